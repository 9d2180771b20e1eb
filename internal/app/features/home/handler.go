package home

import (
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type rootResponse struct {
	Message string `json:"message"`
}

// Serve handles GET /.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	webutil.JSON(w, http.StatusOK, rootResponse{Message: "Electronic Hardware Dealer API"})
}
