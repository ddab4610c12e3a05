package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ykhalil/gulfboard/internal/board/auth"
	"github.com/ykhalil/gulfboard/internal/board/db"
	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"github.com/ykhalil/gulfboard/internal/board/events"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"github.com/ykhalil/gulfboard/internal/board/profile"
	"go.uber.org/zap"
)

// AuthService implements the board's simulated authentication: login is
// gated solely on the email existing, the password is accepted
// unconditionally. This is explicitly a demo simulation and must be
// replaced by real credential verification before production use.
type AuthService struct {
	store     Store
	kv        KV
	producer  EventProducer
	logger    *zap.Logger
	jwtSecret string
}

// NewAuthService constructs an AuthService over the shared store.
func NewAuthService(store Store, kv KV, producer EventProducer, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:     store,
		kv:        kv,
		producer:  producer,
		logger:    logger.Named("auth_service"),
		jwtSecret: jwtSecret,
	}
}

// Login authenticates by email lookup and returns the user with a signed
// session token. Any password is accepted; an unknown email fails with
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, _ string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, "", e.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := auth.GenerateToken(user, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Register creates a new account and logs it in. A duplicate email fails
// with ErrDuplicateEmail; only the seeker and employer roles are open for
// self-registration. New seekers get the empty-profile defaults persisted
// up front.
func (s *AuthService) Register(ctx context.Context, email, _, name string, role models.UserRole) (*models.User, string, error) {
	if email == "" || name == "" {
		return nil, "", fmt.Errorf("%w: email and name are required", e.ErrInvalidInput)
	}
	if role != models.RoleJobSeeker && role != models.RoleEmployer {
		return nil, "", fmt.Errorf("%w: role must be job_seeker or employer", e.ErrInvalidInput)
	}

	exists, err := s.store.UserExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, "", e.ErrDuplicateEmail
	}

	user := &models.User{
		ID:        "user-" + uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, e.ErrDuplicateEmail) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if role == models.RoleJobSeeker {
		if err := s.kv.SetJSON(ctx, db.ProfileKey(user.ID), profile.Default(time.Now())); err != nil {
			s.logger.Warn("failed to seed default profile",
				zap.Error(err),
				zap.String("user_id", user.ID),
			)
		}
	}

	token, err := auth.GenerateToken(user, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	go func() {
		s.producer.Produce(events.UserRegistered, events.Ref{UserID: user.ID})
	}()
	return user, token, nil
}
