package repositories

import (
	"github.com/Masterminds/squirrel"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// newStatementBuilder returns a squirrel builder emitting MySQL placeholders
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
