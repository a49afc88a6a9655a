package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/store"
	"github.com/aminurdev/cms-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// roleRepository resolves the default role assigned at registration.
	roleRepository store.RoleRepository

	// defaultRoleID is the role every newly registered account receives.
	defaultRoleID int64

	// bcryptCost is the cost factor applied when hashing new passwords.
	// Zero falls back to bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, roleRepository store.RoleRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		defaultRoleID:  cfg.DefaultRoleID,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// VerifyCredentials authenticates an existing user.
//
// It validates that both email and password are non-empty, looks up the
// account by email, and compares the submitted password against the
// stored bcrypt hash (constant-time comparison inside bcrypt).
//
// Returns the user record with role and permissions resolved, or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if no user matches or the password is wrong.
//     The two cases are indistinguishable to the caller.
//   - A wrapped storage error on any other repository failure.
func (a *authService) VerifyCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid credentials data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("no user matches submitted email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// RegisterUser creates a new user account.
//
// It validates that both email and password are non-empty, hashes the
// password with bcrypt at the configured cost, resolves the default role,
// and delegates persistence to the UserRepository.
//
// Returns the persisted user (with server-assigned ID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the role lookup or insert fails (e.g.
//     email already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	role, err := a.roleRepository.FindRoleByID(ctx, a.defaultRoleID)
	if err != nil {
		log.Err(err).Int64("role_id", a.defaultRoleID).Msg("default role lookup failed")
		return models.User{}, fmt.Errorf("default role lookup failed: %w", err)
	}

	user := models.User{
		NameEn:       request.NameEn,
		NameBn:       request.NameBn,
		PhoneEn:      request.PhoneEn,
		PhoneBn:      request.PhoneBn,
		Email:        request.Email,
		PasswordHash: string(hash),
		Role:         &role,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// FindUser resolves an email to the stored account, normalising the
// missing-user case to ErrUserNotFound.
func (a *authService) FindUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}
