package http

import (
	"context"
	"net/http"
	"time"

	commonhttp "github.com/flannelman48/whirly-rentals-website/internal/common/http"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
)

type Submitter interface {
	Submit(ctx context.Context, payload map[string]any) error
}

type Handler struct {
	service Submitter
	log     *logger.Logger
}

type submitResponse struct {
	Success bool `json:"success"`
}

// NewHandler serves POST /api/submit. timeout bounds the whole request,
// including the webhook call.
func NewHandler(service Submitter, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{service: service, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/submit", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(timeout)(h.submit)))
	return mux
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	payload, err := commonhttp.DecodeObject(r)
	if err != nil {
		h.log.Debugf("submit decode failed: %v", err)
		commonhttp.WriteDecodeError(w, err)
		return
	}

	if err := h.service.Submit(r.Context(), payload); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, submitResponse{Success: true})
}
