package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
)

// AccountService manages teacher, student and admin accounts on behalf of admins
type AccountService struct {
	accounts AccountStore
	images   imageKeeper
	logger   zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accounts AccountStore, storage filestorage.FileStorage, logger zerolog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		images:   imageKeeper{storage: storage, logger: logger},
		logger:   logger,
	}
}

// Profile returns the account of the calling principal
func (s *AccountService) Profile(ctx context.Context, principal models.Principal) (*models.Account, error) {
	return s.accounts.GetByID(ctx, principal.Role, principal.ID)
}

// List returns all accounts of a role
func (s *AccountService) List(ctx context.Context, role models.Role) ([]*models.Account, error) {
	return s.accounts.List(ctx, role)
}

// Create adds an account of the given role with an optional image
func (s *AccountService) Create(ctx context.Context, role models.Role, req dto.CreateAccountRequest, image *multipart.FileHeader) (*models.Account, error) {
	if err := validateCredentials(req.Name, req.Email, req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Role:     role,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: hash,
	}
	if role.HasDepartment() {
		account.DepartmentID = req.DepartmentID
	}

	if account.Image, err = s.images.save(image); err != nil {
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		s.images.discard(account.Image)
		return nil, err
	}

	s.logger.Info().Str("role", role.String()).Int64("accountID", account.ID).Msg("Account created")
	return account, nil
}

// Update replaces the supplied fields of an account. A new image replaces the
// stored one, which is removed from disk once the row is updated.
func (s *AccountService) Update(ctx context.Context, role models.Role, id int64, req dto.UpdateAccountRequest, image *multipart.FileHeader) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, role, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			return nil, apperrors.NewValidationError("email cannot be empty")
		}
		account.Email = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil {
		if err := validateCredentials(account.Name, account.Email, *req.Password); err != nil {
			return nil, err
		}
		if account.Password, err = auth.HashPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}
	if req.DepartmentID != nil && role.HasDepartment() {
		account.DepartmentID = req.DepartmentID
	}

	newImage, err := s.images.save(image)
	if err != nil {
		return nil, err
	}
	oldImage := account.Image
	if newImage != nil {
		account.Image = newImage
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		s.images.discard(newImage)
		return nil, err
	}
	if newImage != nil {
		s.images.discard(oldImage)
	}

	s.logger.Info().Str("role", role.String()).Int64("accountID", account.ID).Msg("Account updated")
	return account, nil
}

// Delete removes an account and its image. The last admin cannot be removed.
func (s *AccountService) Delete(ctx context.Context, role models.Role, id int64) error {
	account, err := s.accounts.GetByID(ctx, role, id)
	if err != nil {
		return err
	}

	if role == models.RoleAdmin {
		err = s.accounts.DeleteAdmin(ctx, id)
	} else {
		err = s.accounts.Delete(ctx, role, id)
	}
	if err != nil {
		return err
	}

	s.images.discard(account.Image)
	s.logger.Info().Str("role", role.String()).Int64("accountID", id).Msg("Account deleted")
	return nil
}
