package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// InvalidLoginMessage is returned with every soft login failure
const InvalidLoginMessage = "Invalid email or password"

// AuthService handles authentication operations
type AuthService struct {
	accounts AccountStore
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts AccountStore, tokens TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies the credentials against the table of the requested role and
// issues a token signed with that role's key. Unknown emails and wrong
// passwords both return apperrors.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.Role) == "" {
		return nil, apperrors.NewValidationError("email, password and role are required")
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRole, fmt.Sprintf("invalid role %q", req.Role))
	}

	account, err := s.accounts.FindByEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			s.logger.Info().Str("role", role.String()).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		s.logger.Info().Str("role", role.String()).Int64("accountID", account.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(role, account.Email, account.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("role", role.String()).Msg("Failed to sign token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info().Str("role", role.String()).Int64("accountID", account.ID).Msg("Login successful")
	return &dto.LoginResponse{
		LoginStatus: true,
		Token:       token,
		Role:        role.String(),
		ID:          account.ID,
	}, nil
}

// SignUp creates a student account
func (s *AuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*models.Account, error) {
	if err := validateCredentials(req.Name, req.Email, req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Role:         models.RoleStudent,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Password:     hash,
		DepartmentID: req.DepartmentID,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", account.ID).Msg("Student signed up")
	return account, nil
}

func validateCredentials(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email cannot be empty")
	}
	if password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}
	if len(password) > auth.MaxPasswordBytes {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordBytes))
	}
	return nil
}
