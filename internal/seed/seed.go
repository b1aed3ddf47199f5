package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// Defaults is the startup data taken from configuration
type Defaults struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	Departments   []string
	Categories    []string
}

// AccountCreator is the part of the account repository the seed needs
type AccountCreator interface {
	Count(ctx context.Context, role appModels.Role) (int64, error)
	Create(ctx context.Context, account *appModels.Account) error
}

// DepartmentCreator creates departments
type DepartmentCreator interface {
	Create(ctx context.Context, department *appModels.Department) error
}

// CategoryCreator creates categories
type CategoryCreator interface {
	Create(ctx context.Context, category *appModels.Category) error
}

// CreateDefaultData creates the first super admin when none exists, plus the
// configured departments and categories. Rows that already exist are skipped.
func CreateDefaultData(ctx context.Context, accounts AccountCreator, departments DepartmentCreator, categories CategoryCreator, defaults Defaults, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Admin/Departments/Categories)...")
	var finalErr error // collects errors without stopping the process

	if err := createDefaultAdmin(ctx, accounts, defaults, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	for _, name := range defaults.Departments {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		err := departments.Create(ctx, &appModels.Department{Name: name})
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range defaults.Categories {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		err := categories.Create(ctx, &appModels.Category{Name: name})
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("category", name).Msg("Error creating category")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation completed.")
	}
	return finalErr
}

func createDefaultAdmin(ctx context.Context, accounts AccountCreator, defaults Defaults, lgr zerolog.Logger) error {
	count, err := accounts.Count(ctx, appModels.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if defaults.AdminEmail == "" || defaults.AdminPassword == "" {
		lgr.Warn().Msg("No super admin exists and no seed credentials are configured")
		return nil
	}

	hash, err := auth.HashPassword(defaults.AdminPassword)
	if err != nil {
		return err
	}
	admin := &appModels.Account{
		Role:     appModels.RoleAdmin,
		Name:     defaults.AdminName,
		Email:    defaults.AdminEmail,
		Password: hash,
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return err
	}
	lgr.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Default super admin created")
	return nil
}
