package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/assistant"
	"ats-backend/internal/documents"
	"ats-backend/internal/services/health"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	Health           *health.Service
	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	AssistantHandler *assistant.Handler
}

const assistantRateGroup = "ASSISTANT"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)

	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.AssistantHandler != nil {
		rpm := deps.Config.AssistantRPM
		if rpm <= 0 {
			rpm = 20
		}
		assistantGroup := api.Group("")
		assistantGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: assistantRateGroup,
			Rules: map[string]middleware.RateLimitRule{
				assistantRateGroup: {Rate: float64(rpm) / 60.0, Burst: rpm},
			},
		}))
		deps.AssistantHandler.RegisterRoutes(assistantGroup)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
