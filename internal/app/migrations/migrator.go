package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/db"
)

// Migrator creates the schema at process start
type Migrator struct {
	db     db.DBTX
	tables []Table
	logger zerolog.Logger
}

// NewMigrator creates a migrator for the bootstrap schema
func NewMigrator(conn db.DBTX, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     conn,
		tables: Schema,
		logger: logger,
	}
}

// Run executes every creation statement in order. Statements are idempotent,
// so running on an existing database is a no-op. The first failure stops the run.
func (m *Migrator) Run(ctx context.Context) error {
	for i, table := range m.tables {
		if _, err := m.db.ExecContext(ctx, table.SQL); err != nil {
			return fmt.Errorf("failed to create table %s (step %d): %w", table.Name, i+1, err)
		}
		m.logger.Debug().Str("table", table.Name).Msg("Table ensured")
	}
	m.logger.Info().Int("tables", len(m.tables)).Msg("Database schema ensured")
	return nil
}
