package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flannelman48/whirly-rentals-website/internal/common/clock"
	"github.com/flannelman48/whirly-rentals-website/internal/common/crypto"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	commonvalidation "github.com/flannelman48/whirly-rentals-website/internal/common/validation"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
	inquiryrepo "github.com/flannelman48/whirly-rentals-website/internal/inquiry/repository"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/validation"
	"github.com/flannelman48/whirly-rentals-website/internal/observability/metrics"
)

type Validator interface {
	Validate(raw map[string]any) (domain.NewRentalInquiry, error)
}

type InquiryServiceDeps struct {
	Repo        inquiryrepo.Repository
	Validator   Validator
	IDGenerator crypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type InquiryService struct {
	repo        inquiryrepo.Repository
	validator   Validator
	idGenerator crypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewInquiryService(deps InquiryServiceDeps) *InquiryService {
	v := deps.Validator
	if v == nil {
		v = validation.NewRentalInquiryValidator()
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = crypto.NewUUIDGenerator()
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &InquiryService{
		repo:        deps.Repo,
		validator:   v,
		idGenerator: idGen,
		clock:       clk,
		log:         deps.Log,
	}
}

// Create validates raw and stores it under a fresh id stamped with the current time.
// Validation failures come back as *commonvalidation.ValidationError.
func (s *InquiryService) Create(ctx context.Context, raw map[string]any) (domain.RentalInquiry, error) {
	input, err := s.validator.Validate(raw)
	if err != nil {
		if ve, ok := commonvalidation.AsValidationError(err); ok {
			for _, f := range ve.Fields {
				metrics.RentalInquiryValidationFailures.WithLabelValues(f.Field).Inc()
			}
			s.log.WithFields(ctx, logger.Fields{
				"fields": len(ve.Fields),
				"action": "inquiry_validation_failed",
			}).Debug("rental inquiry rejected")
		}
		return domain.RentalInquiry{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return domain.RentalInquiry{}, err
	}

	inquiry := domain.RentalInquiry{
		ID:               domain.ID(id),
		NewRentalInquiry: input,
		CreatedAt:        s.clock.Now(),
	}
	if inquiry.Message != nil && *inquiry.Message == "" {
		inquiry.Message = nil
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return domain.RentalInquiry{}, fmt.Errorf("failed to store inquiry: %w", err)
	}

	metrics.RentalInquiriesCreated.WithLabelValues(string(inquiry.PackageInterest)).Inc()
	s.log.WithFields(ctx, logger.Fields{
		"inquiry_id": id,
		"package":    string(inquiry.PackageInterest),
		"action":     "create_inquiry",
	}).Info("rental inquiry stored")

	return inquiry, nil
}

func (s *InquiryService) List(ctx context.Context) ([]domain.RentalInquiry, error) {
	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *InquiryService) Get(ctx context.Context, id string) (domain.RentalInquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, domain.ID(id))
	if err != nil {
		if errors.Is(err, commonerrors.ErrInquiryNotFound) {
			return domain.RentalInquiry{}, commonerrors.ErrInquiryNotFound
		}
		return domain.RentalInquiry{}, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return inquiry, nil
}
