package jobs

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
	rg.GET("/jobs", h.ListJobs)
	rg.POST("/jobs", h.CreateJob)
}

// ListJobs handles GET /api/v1/jobs[?refresh=true]
func (h *Handler) ListJobs(c *gin.Context) {
	userID := middleware.Principal(c)

	views, err := h.service.Jobs(c.Request.Context(), userID, c.Query("refresh") == "true")
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAuthenticated):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		case errors.Is(err, querycache.ErrTimeout):
			response.Error(c, http.StatusGatewayTimeout, "TIMEOUT", "Backend fetch timed out")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch jobs")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"jobs": views})
}

// CreateJob handles POST /api/v1/jobs
func (h *Handler) CreateJob(c *gin.Context) {
	userID := middleware.Principal(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		if _, ok := fields["Title"]; ok {
			response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "title required", fields)
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "validation failed", fields)
		return
	}

	view, err := h.service.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidPriority):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create job")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"job": view})
}
