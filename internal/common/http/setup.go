package http

import (
	"net/http"

	"github.com/flannelman48/whirly-rentals-website/internal/common/constants"
	"github.com/flannelman48/whirly-rentals-website/internal/common/httpmetrics"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
)

func BuildBaseHandler(appName string, log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	requestLog := RequestLogMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware
	csp := ContentSecurityPolicyMiddleware("")

	return securityHeaders(csp(recovery(traceID(requestLog(maxRequestSize(metrics.Wrap(handler)))))))
}
