package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// AccountRepository reads and writes the three role tables. The table is
// always chosen from models.Role, never from request input.
type AccountRepository struct {
	db *db.MySQLDB
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *db.MySQLDB) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func accountColumns(role models.Role) []string {
	department := "department_id"
	if !role.HasDepartment() {
		department = "NULL AS department_id"
	}
	return []string{"id", "name", "email", "password", "image", department, "created_at"}
}

func scanAccount(row rowScanner, role models.Role) (*models.Account, error) {
	var (
		account    models.Account
		image      sql.NullString
		department sql.NullInt64
	)
	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&image,
		&department,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}
	account.Role = role
	account.Image = helpers.StringPtr(image)
	account.DepartmentID = helpers.Int64Ptr(department)
	return &account, nil
}

func (r *AccountRepository) getOne(ctx context.Context, role models.Role, where squirrel.Eq) (*models.Account, error) {
	query, args, err := r.sb.Select(accountColumns(role)...).
		From(role.Table()).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build account query: %w", err)
	}

	account, err := scanAccount(r.db.DB.QueryRowContext(ctx, query, args...), role)
	if err != nil {
		return nil, dberrors.Classify(err, apperrors.ErrAccountNotFound, apperrors.ErrEmailAlreadyExists)
	}
	return account, nil
}

// FindByEmail looks an account up in the role's table
func (r *AccountRepository) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error) {
	return r.getOne(ctx, role, squirrel.Eq{"email": email})
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, role models.Role, id int64) (*models.Account, error) {
	return r.getOne(ctx, role, squirrel.Eq{"id": id})
}

// List returns every account of a role, oldest first
func (r *AccountRepository) List(ctx context.Context, role models.Role) ([]*models.Account, error) {
	query, args, err := r.sb.Select(accountColumns(role)...).
		From(role.Table()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build account list query: %w", err)
	}

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberrors.Classify(err, apperrors.ErrAccountNotFound, apperrors.ErrEmailAlreadyExists)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows, role)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return accounts, nil
}

// Create inserts the account and sets its ID
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	columns := []string{"name", "email", "password", "image"}
	values := []any{account.Name, account.Email, account.Password, helpers.GetNullString(account.Image)}
	if account.Role.HasDepartment() {
		columns = append(columns, "department_id")
		values = append(values, helpers.GetNullInt64(account.DepartmentID))
	}

	query, args, err := r.sb.Insert(account.Role.Table()).
		Columns(columns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build account insert: %w", err)
	}

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return dberrors.Classify(err, apperrors.ErrAccountNotFound, apperrors.ErrEmailAlreadyExists)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	account.ID = id
	return nil
}

// Update rewrites the mutable columns of an account
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	update := r.sb.Update(account.Role.Table()).
		Set("name", account.Name).
		Set("email", account.Email).
		Set("password", account.Password).
		Set("image", helpers.GetNullString(account.Image))
	if account.Role.HasDepartment() {
		update = update.Set("department_id", helpers.GetNullInt64(account.DepartmentID))
	}

	query, args, err := update.Where(squirrel.Eq{"id": account.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build account update: %w", err)
	}

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return dberrors.Classify(err, apperrors.ErrAccountNotFound, apperrors.ErrEmailAlreadyExists)
	}
	return requireAffected(result, apperrors.ErrAccountNotFound)
}

// Delete removes an account by ID
func (r *AccountRepository) Delete(ctx context.Context, role models.Role, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", role.Table())

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return dberrors.Classify(err, apperrors.ErrAccountNotFound, apperrors.ErrEmailAlreadyExists)
	}
	return requireAffected(result, apperrors.ErrAccountNotFound)
}

// DeleteAdmin removes an admin unless it is the only one left. The count is
// taken under a row lock so two concurrent deletes cannot both pass.
func (r *AccountRepository) DeleteAdmin(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var total int64
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM super_admin FOR UPDATE`).Scan(&total); err != nil {
			return apperrors.NewStorageError(err)
		}
		if total <= 1 {
			return apperrors.ErrLastAdmin
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM super_admin WHERE id = ?`, id)
		if err != nil {
			return dberrors.Classify(err, apperrors.ErrAccountNotFound, apperrors.ErrConflict)
		}
		return requireAffected(result, apperrors.ErrAccountNotFound)
	})
}

// Count returns the number of accounts of a role
func (r *AccountRepository) Count(ctx context.Context, role models.Role) (int64, error) {
	return countRows(ctx, r.db.DB, role.Table())
}

// requireAffected turns a zero-row write into notFound
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// countRows counts a whole table. table must be a trusted identifier.
func countRows(ctx context.Context, conn db.DBTX, table string) (int64, error) {
	var total int64
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&total); err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return total, nil
}
