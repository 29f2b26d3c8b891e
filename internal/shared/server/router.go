package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/resumes"
	"resume-scorer/internal/scores"
	"resume-scorer/internal/services/health"
	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/metrics"
	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/server/respond"
)

// Rate limit rule groups.
const (
	GroupScore  = "SCORE"
	GroupUpload = "UPLOAD"
)

// RouterDeps carries the handlers and services the router exposes.
type RouterDeps struct {
	Config         config.Config
	ScoresHandler  *scores.Handler
	ResumesHandler *resumes.Handler
	Health         *health.Service
	Limiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Identity(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    RateLimitRules(deps.Config),
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
		}),
	)

	healthz := func(c *gin.Context) {
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	}
	r.GET("/healthz", healthz)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthz)
	registerMeRoutes(api)
	deps.ScoresHandler.RegisterRoutes(api)
	deps.ScoresHandler.RegisterUploadRoutes(api)
	deps.ResumesHandler.RegisterRoutes(api)
	deps.ResumesHandler.RegisterScoreRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// RateLimitRules derives the per-group token buckets from configuration. Uploads
// get a fifth of the scoring budget.
func RateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	uploadBurst := cfg.RateLimitBurst / 5
	if uploadBurst < 1 {
		uploadBurst = 1
	}
	return map[string]middleware.RateLimitRule{
		GroupScore:  {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		GroupUpload: {Rate: cfg.RateLimitRPS / 5, Burst: uploadBurst},
	}
}

func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case path == "/api/v1/scores/upload":
		return GroupUpload
	case strings.HasPrefix(path, "/api/v1/scores"), strings.HasSuffix(path, "/score"):
		return GroupScore
	default:
		return ""
	}
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
