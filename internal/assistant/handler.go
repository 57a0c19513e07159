package assistant

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/llm"
	"ats-backend/internal/shared/server/respond"
)

// Handler wires the assistant endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assistant routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant", h.run)
}

func (h *Handler) run(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Action = strings.TrimSpace(req.Action)
	if req.Action == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "action is required", nil)
		return
	}
	if req.Action == ActionJobMatch && strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required for job_match", nil)
		return
	}

	payload, err := h.Svc.Run(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownAction):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, llm.ErrRateLimited):
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "AI service is rate limited. Please try again in a moment.", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "AI assistant is not configured", nil)
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "llm_unavailable", "AI service error. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "assistant request failed", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, payload)
}
