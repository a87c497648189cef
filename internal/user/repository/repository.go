package repository

import (
	"context"

	"github.com/flannelman48/whirly-rentals-website/internal/user/domain"
)

// Repository stores users. Create fails with commonerrors.ErrUsernameAlreadyExists on a
// taken username; the finders fail with commonerrors.ErrUserNotFound.
type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}
