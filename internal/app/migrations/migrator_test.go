package migrations

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExecutesSchemaInOrder(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	for _, table := range Schema {
		mock.ExpectExec(regexp.QuoteMeta(table.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, NewMigrator(sqlDB, zerolog.Nop()).Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec(regexp.QuoteMeta(Schema[0].SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(Schema[1].SQL)).WillReturnError(errors.New("disk full"))

	err = NewMigrator(sqlDB, zerolog.Nop()).Run(context.Background())
	assert.ErrorContains(t, err, Schema[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaIsIdempotentAndOrdered(t *testing.T) {
	seen := map[string]int{}
	for i, table := range Schema {
		assert.True(t, strings.HasPrefix(table.SQL, "CREATE TABLE IF NOT EXISTS "+table.Name+" "), table.Name)
		seen[table.Name] = i
	}

	// Every referenced table must be created before the table referencing it.
	ref := regexp.MustCompile(`REFERENCES (\w+)\(`)
	for i, table := range Schema {
		for _, m := range ref.FindAllStringSubmatch(table.SQL, -1) {
			parent, ok := seen[m[1]]
			require.True(t, ok, "%s references unknown table %s", table.Name, m[1])
			assert.Less(t, parent, i, "%s must come after %s", table.Name, m[1])
		}
	}
}

func TestRatingsTableBoundsRating(t *testing.T) {
	for _, table := range Schema {
		if table.Name == "ratings" {
			assert.Contains(t, table.SQL, "CHECK (rating BETWEEN 1 AND 5)")
			return
		}
	}
	t.Fatal("ratings table missing")
}
