package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/coursehub/internal/app/models"
)

const exportSheet = "Accounts"

// DashboardService serves the admin dashboard counters and account exports
type DashboardService struct {
	dashboard DashboardStore
	accounts  AccountStore
	logger    zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboard DashboardStore, accounts AccountStore, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboard: dashboard,
		accounts:  accounts,
		logger:    logger,
	}
}

// Counts returns the dashboard counters
func (s *DashboardService) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	return s.dashboard.Counts(ctx)
}

// ExportAccounts renders every account of a role as an XLSX workbook
func (s *DashboardService) ExportAccounts(ctx context.Context, role models.Role) ([]byte, error) {
	accounts, err := s.accounts.List(ctx, role)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []any{"ID", "Name", "Email", "Department ID", "Image", "Created At"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, account := range accounts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}

		var department, image any
		if account.DepartmentID != nil {
			department = *account.DepartmentID
		}
		if account.Image != nil {
			image = *account.Image
		}

		row := []any{account.ID, account.Name, account.Email, department, image, account.CreatedAt.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info().Str("role", role.String()).Int("rows", len(accounts)).Msg("Accounts exported")
	return buf.Bytes(), nil
}
