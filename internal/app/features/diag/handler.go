// internal/app/features/diag/handler.go
package diag

import (
	"context"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"go.uber.org/zap"
)

// maxCollections bounds the collection listing in the report.
const maxCollections = 10

// Handler serves GET /test: a purely observational report on the HTTP layer,
// the store connection, and the store configuration. It mutates nothing and
// never returns an error status; every internal fault is downgraded to
// descriptive text in the report.
type Handler struct {
	Docs *docs.Store
	Log  *zap.Logger

	// Presence (not validity) of the two store configuration values,
	// captured at startup.
	URIConfigured  bool
	NameConfigured bool
}

func NewHandler(d *docs.Store, uriConfigured, nameConfigured bool, logger *zap.Logger) *Handler {
	return &Handler{
		Docs:           d,
		Log:            logger,
		URIConfigured:  uriConfigured,
		NameConfigured: nameConfigured,
	}
}

type report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Serve handles GET /test.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := report{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(h.URIConfigured),
		DatabaseName:     setOrNot(h.NameConfigured),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.Docs.Available() {
		resp.Database = "available"
		resp.ConnectionStatus = "connected"

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		names, err := h.Docs.ListCollectionNames(ctx, maxCollections)
		if err != nil {
			h.Log.Warn("diag: collection listing failed", zap.Error(err))
			resp.Database = "connected but error: " + truncate(err.Error(), 50)
		} else {
			resp.Database = "connected and working"
			resp.Collections = names
		}
	}

	webutil.JSON(w, http.StatusOK, resp)
}

func setOrNot(configured bool) string {
	if configured {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
