// Package auth provides user registration, credential verification and
// bearer-token issuance/validation for the API's protected routes.
package auth

import (
	"errors"
	"fmt"

	"github.com/svidal/rutinas-api/internal/config"
	"github.com/svidal/rutinas-api/internal/database/users"
	"github.com/svidal/rutinas-api/internal/entities"
)

var (
	ErrUserExists            = errors.New("user already exists")
	ErrUsernameRequired      = errors.New("username is required")
	ErrPasswordRequired      = errors.New("password is required")
	ErrCredencialesInvalidas = errors.New("incorrect username or password")
)

// Service handles authentication and user management.
type Service struct {
	users  *users.Repository
	tokens *TokenManager
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, tokens *TokenManager, cfg config.Auth) *Service {
	return &Service{
		users:  repo,
		tokens: tokens,
		config: cfg,
	}
}

// Register creates a new user, storing only a bcrypt hash of the password.
func (s *Service) Register(username, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(username, hash)
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token.
// Unknown usernames and wrong passwords return the same error, so callers
// cannot enumerate accounts.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return "", ErrCredencialesInvalidas
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return "", ErrCredencialesInvalidas
	}

	return s.tokens.Generate(user.Username)
}

// Authenticate resolves a bearer token to its user. Malformed, forged or
// expired tokens, and tokens whose subject no longer exists, all fail with
// ErrInvalidToken.
func (s *Service) Authenticate(token string) (*entities.User, error) {
	username, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
