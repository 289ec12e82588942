package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/database"
	"github.com/profilkantor/profile-api/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBStats is the pool snapshot reported by /health/db
type DBStats struct {
	MaxOpenConnections int   `json:"max_open_connections"`
	OpenConnections    int   `json:"open_connections"`
	InUse              int   `json:"in_use"`
	Idle               int   `json:"idle"`
	WaitCount          int64 `json:"wait_count"`
	WaitDurationMs     int64 `json:"wait_duration_ms"`
	MaxIdleClosed      int64 `json:"max_idle_closed"`
	MaxLifetimeClosed  int64 `json:"max_lifetime_closed"`
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db   *gorm.DB
	resp *Responder
}

func NewHealthHandler(db *gorm.DB, resp *Responder) *HealthHandler {
	return &HealthHandler{db: db, resp: resp}
}

// Live godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} domain.Response
// @Router /health [get]
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.resp.Success(w, http.StatusOK, nil, "Server is running")
}

// Database godoc
// @Summary Database health with pool statistics
// @Tags Health
// @Produce json
// @Success 200 {object} domain.Response{data=DBStats}
// @Failure 503 {object} domain.Response
// @Router /health/db [get]
func (h *HealthHandler) Database(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(r.Context(), h.db)
	if err != nil {
		h.resp.logger.Error("Database health check failed", zap.Error(err))
		h.resp.FailWithError(w, http.StatusServiceUnavailable, "Database is unavailable", err)
		return
	}

	h.resp.Success(w, http.StatusOK, DBStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDurationMs:     stats.WaitDuration.Milliseconds(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}, "Database is healthy")
}

// Ready godoc
// @Summary Readiness probe over all dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.Response{data=map[string]string}
// @Failure 503 {object} domain.Response{data=map[string]string}
// @Router /health/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"database": "healthy"}
	if err := database.HealthCheck(r.Context(), h.db); err != nil {
		h.resp.logger.Error("Database health check failed", zap.Error(err))
		checks["database"] = "unhealthy"
		respondJSON(w, http.StatusServiceUnavailable, domain.Response{
			Status:  domain.StatusError,
			Data:    checks,
			Message: "Service is not ready",
		})
		return
	}
	h.resp.Success(w, http.StatusOK, checks, "Service is ready")
}

// RouteNotFound answers unmatched routes and methods
func (rs *Responder) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	rs.Fail(w, http.StatusNotFound, "Route not found")
}
