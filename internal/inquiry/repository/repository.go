package repository

import (
	"context"

	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

// Repository stores rental inquiries. List returns them newest first.
// FindByID fails with commonerrors.ErrInquiryNotFound.
type Repository interface {
	Create(ctx context.Context, inquiry domain.RentalInquiry) error
	FindByID(ctx context.Context, id domain.ID) (domain.RentalInquiry, error)
	List(ctx context.Context) ([]domain.RentalInquiry, error)
}
