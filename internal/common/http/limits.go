package http

import (
	"errors"
	"net/http"

	"github.com/flannelman48/whirly-rentals-website/internal/common/constants"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
)

func MaxRequestSizeMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = constants.DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				WriteErrorEnvelope(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large", nil, "")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// WriteDecodeError answers a body that could not be decoded: 413 past the size limit, 400 otherwise.
func WriteDecodeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		WriteErrorEnvelope(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large", nil, "")
		return
	}
	WriteErrorEnvelope(w, commonerrors.ErrInvalidJSON.HTTPStatus(), commonerrors.ErrInvalidJSON.Code(), commonerrors.ErrInvalidJSON.Message(), nil, "")
}
