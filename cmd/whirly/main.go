package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flannelman48/whirly-rentals-website/internal/common/bootstrap"
	commonhttp "github.com/flannelman48/whirly-rentals-website/internal/common/http"
	srv "github.com/flannelman48/whirly-rentals-website/internal/common/server"
	inquiryhttp "github.com/flannelman48/whirly-rentals-website/internal/inquiry/http"
	submissionhttp "github.com/flannelman48/whirly-rentals-website/internal/submission/http"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.NewApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	log := app.Log
	cfg := app.Config

	mux := http.NewServeMux()
	mux.Handle("/api/rental-inquiries", inquiryhttp.NewHandler(app.Inquiries, cfg.RequestTimeout, log))
	mux.Handle("/api/rental-inquiries/", inquiryhttp.NewHandler(app.Inquiries, cfg.RequestTimeout, log))
	mux.Handle("/api/submit", submissionhttp.NewHandler(app.Submission, cfg.Webhook.Timeout, log))
	mux.Handle("/health", commonhttp.HealthHandler(log, app.Storage.Ping))
	mux.Handle("/metrics", promhttp.Handler())

	static, err := commonhttp.StaticHandler(cfg.StaticDir)
	if err != nil {
		log.Warnf("serving API only: %v", err)
		static = commonhttp.APINotFoundHandler()
	}
	mux.Handle("/", static)

	baseHandler := commonhttp.BuildBaseHandler("whirly", log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			log.Infof("whirly service: closing %s storage", app.Storage.Backend)
			return app.Close(ctx)
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, "whirly", shutdownHooks)
}
