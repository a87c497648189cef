package http

import (
	"context"
	"net/http"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
)

// HealthHandler reports ok while ping succeeds. A nil ping always reports ok.
func HealthHandler(log *logger.Logger, ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			WriteErrorEnvelope(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil, "")
			return
		}

		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				log.WithFields(r.Context(), logger.Fields{
					"error":  err.Error(),
					"action": "health_check",
				}).Warn("storage ping failed")
				WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		log.Debug("health check request")
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
