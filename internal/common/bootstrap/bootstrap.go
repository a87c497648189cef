package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flannelman48/whirly-rentals-website/internal/common/config"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	inquiryservice "github.com/flannelman48/whirly-rentals-website/internal/inquiry/service"
	"github.com/flannelman48/whirly-rentals-website/internal/storage"
	"github.com/flannelman48/whirly-rentals-website/internal/submission"
	userservice "github.com/flannelman48/whirly-rentals-website/internal/user/service"
)

const serviceName = "whirly"

type App struct {
	Log        *logger.Logger
	Config     config.WhirlyConfig
	Storage    *storage.Storage
	Users      *userservice.UserService
	Inquiries  *inquiryservice.InquiryService
	Submission *submission.Service
}

// NewApp loads configuration, opens storage and wires the services.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogDir, serviceName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewAppWithConfig(ctx, cfg, log)
}

func NewAppWithConfig(ctx context.Context, cfg config.WhirlyConfig, log *logger.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	users := userservice.NewUserService(userservice.UserServiceDeps{
		Repo: store.Users,
		Log:  log,
	})
	inquiries := inquiryservice.NewInquiryService(inquiryservice.InquiryServiceDeps{
		Repo: store.Inquiries,
		Log:  log,
	})
	sub := submission.NewService(submission.ServiceDeps{
		Config:    cfg.Webhook,
		Forwarder: submission.NewHTTPForwarder(&http.Client{Timeout: cfg.Webhook.Timeout}),
		Log:       log,
	})

	return &App{
		Log:        log,
		Config:     cfg,
		Storage:    store,
		Users:      users,
		Inquiries:  inquiries,
		Submission: sub,
	}, nil
}

func (a *App) Close(ctx context.Context) error {
	if err := a.Storage.Close(ctx); err != nil {
		return err
	}
	return a.Log.Close()
}
