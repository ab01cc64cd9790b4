package directory

import (
	"errors"
	"net/http"

	"fieldops/internal/middleware"
	"fieldops/internal/pkg/response"
	"fieldops/internal/pkg/validator"
	"fieldops/internal/querycache"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/organizations", h.ListOrganizations)
	rg.GET("/associates", h.ListAssociates)
	rg.GET("/customers", h.ListCustomers)
	rg.POST("/organizations", h.CreateOrganization)
}

// ListOrganizations handles GET /api/v1/organizations[?refresh=true]
func (h *Handler) ListOrganizations(c *gin.Context) {
	userID := middleware.Principal(c)

	orgs, err := h.service.Organizations(c.Request.Context(), userID, refreshRequested(c))
	if err != nil {
		handleListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"organizations": orgs})
}

// ListAssociates handles GET /api/v1/associates[?refresh=true]
func (h *Handler) ListAssociates(c *gin.Context) {
	userID := middleware.Principal(c)

	associates, err := h.service.Associates(c.Request.Context(), userID, refreshRequested(c))
	if err != nil {
		handleListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"associates": associates})
}

// ListCustomers handles GET /api/v1/customers[?refresh=true]
func (h *Handler) ListCustomers(c *gin.Context) {
	userID := middleware.Principal(c)

	customers, err := h.service.Customers(c.Request.Context(), userID, refreshRequested(c))
	if err != nil {
		handleListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

// CreateOrganization handles POST /api/v1/organizations
func (h *Handler) CreateOrganization(c *gin.Context) {
	userID := middleware.Principal(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		if _, ok := fields["Name"]; ok {
			response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "name required", fields)
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "validation failed", fields)
		return
	}

	org, err := h.service.CreateOrganization(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidClassification) {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid classification")
			return
		}
		if errors.Is(err, ErrDuplicateName) {
			response.Error(c, http.StatusConflict, "CONFLICT", "organization name already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create organization")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"organization": org})
}

func refreshRequested(c *gin.Context) bool {
	return c.Query("refresh") == "true"
}

func handleListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	case errors.Is(err, querycache.ErrTimeout):
		response.Error(c, http.StatusGatewayTimeout, "TIMEOUT", "Backend fetch timed out")
	default:
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch records")
	}
}
