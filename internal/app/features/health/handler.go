package health

import (
	"context"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Docs *docs.Store
	Log  *zap.Logger
}

// NewHandler constructs a health Handler with the store adapter and logger.
func NewHandler(d *docs.Store, logger *zap.Logger) *Handler {
	return &Handler{Docs: d, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and {"status":"ok","database":"connected"}.
// On store failure: 503 and {"status":"error","database":"disconnected",...}.
// Unlike GET /test, this endpoint fails loudly so load balancers and
// orchestrators can act on it.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Docs.Ping(ctx); err != nil {
		h.Log.Error("health-check: store ping failed", zap.Error(err))
		webutil.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "error",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	webutil.JSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "connected"})
}
