// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, session
// token issuance, and the first-run admin bootstrap.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/auth"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/config"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials and mint a session token
// - EnsureAdmin: first-run bootstrap of the well-known admin account
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new user. Email and password must be non-empty; an empty
// role falls back to the default. A duplicate email yields
// common.ErrorAlreadyExists from the repository (unique index, not a
// read-then-write check).
func (s *UserService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}
	if role == "" {
		role = common.DefaultRole
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed session token together with the user profile. An unknown
// email yields common.ErrorNotFound; a wrong password yields
// common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorNotFound
		}
		return "", nil, common.ErrorInternal
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// EnsureAdmin creates the well-known admin account if it does not exist yet.
// Returns true when the account was created on this call.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, fmt.Errorf("error checking admin account: %w", err)
	}

	if _, err := s.Register(ctx, "Admin", email, password, common.AdminRole); err != nil {
		// A concurrent bootstrap may have won the race.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error creating admin account: %w", err)
	}

	return true, nil
}
