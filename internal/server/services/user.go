// Package services contains the server-side business logic.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/server/auth"
	"github.com/dmitrijs2005/projecthub/internal/server/config"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/repomanager"
)

// UserService handles registration and login.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a hashed password. The duplicate check
// is a lookup immediately before the insert; two concurrent registrations
// of the same email can race past it, and the unique index on email then
// fails the late insert.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking for existing user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, Name: name, PasswordHash: hash}
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed bearer
// token carrying the user identity. An unknown email yields
// common.ErrorUnauthorized, a wrong password common.ErrorInvalidLoginPassword;
// the HTTP layer maps the two differently.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorInvalidLoginPassword
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
