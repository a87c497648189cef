package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flannelman48/whirly-rentals-website/internal/common/clock"
	"github.com/flannelman48/whirly-rentals-website/internal/common/crypto"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	"github.com/flannelman48/whirly-rentals-website/internal/user/domain"
	userrepo "github.com/flannelman48/whirly-rentals-website/internal/user/repository"
)

type UserServiceDeps struct {
	Repo        userrepo.Repository
	IDGenerator crypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type UserService struct {
	repo        userrepo.Repository
	validator   *UserValidator
	idGenerator crypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewUserService(deps UserServiceDeps) *UserService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = crypto.NewUUIDGenerator()
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &UserService{
		repo:        deps.Repo,
		validator:   NewUserValidator(),
		idGenerator: idGen,
		clock:       clk,
		log:         deps.Log,
	}
}

// CreateUser validates raw, rejects a username that is already taken and stores the user.
func (s *UserService) CreateUser(ctx context.Context, raw map[string]any) (domain.User, error) {
	input, err := s.validator.Validate(raw)
	if err != nil {
		return domain.User{}, err
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_conflict",
		}).Warn("username already taken")
		return domain.User{}, commonerrors.ErrUsernameAlreadyExists
	} else if !errors.Is(err, commonerrors.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("failed to check username: %w", err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:        domain.ID(id),
		Username:  input.Username,
		Password:  input.Password,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, commonerrors.ErrUsernameAlreadyExists) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": id,
		"action":  "create_user",
	}).Info("user created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.repo.FindByID(ctx, domain.ID(id))
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
