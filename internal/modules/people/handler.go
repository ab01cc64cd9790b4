package people

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
	rg.GET("/people", h.ListPeople)
	rg.POST("/people", h.CreatePerson)
}

// ListPeople handles GET /api/v1/people[?refresh=true]
func (h *Handler) ListPeople(c *gin.Context) {
	userID := middleware.Principal(c)

	views, err := h.service.People(c.Request.Context(), userID, c.Query("refresh") == "true")
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAuthenticated):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		case errors.Is(err, querycache.ErrTimeout):
			response.Error(c, http.StatusGatewayTimeout, "TIMEOUT", "Backend fetch timed out")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch people")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"people": views})
}

// CreatePerson handles POST /api/v1/people
func (h *Handler) CreatePerson(c *gin.Context) {
	userID := middleware.Principal(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "validation failed", fields)
		return
	}

	view, err := h.service.CreatePerson(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create person")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"person": view})
}
