package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func int64Ptr(i int64) *int64 { return &i }

func TestCreateTeacherWithImage(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	storage := &fakeStorage{}
	svc := NewAccountService(accounts, storage, zerolog.Nop())

	teacher, err := svc.Create(ctx, models.RoleTeacher, dto.CreateAccountRequest{
		Name: "Grace", Email: "grace@x.com", Password: "cobol", DepartmentID: int64Ptr(2),
	}, &multipart.FileHeader{Filename: "grace.jpg"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleTeacher, teacher.Role)
	assert.True(t, auth.CheckPassword(teacher.Password, "cobol"))
	assert.Equal(t, "stored-grace.jpg", *teacher.Image)
	assert.Equal(t, int64(2), *teacher.DepartmentID)

	// Duplicate email removes the image it just stored.
	_, err = svc.Create(ctx, models.RoleTeacher, dto.CreateAccountRequest{
		Name: "Other", Email: "grace@x.com", Password: "x",
	}, &multipart.FileHeader{Filename: "other.jpg"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, []string{"stored-other.jpg"}, storage.deleted)
}

func TestAdminAccountsIgnoreDepartment(t *testing.T) {
	svc := NewAccountService(newFakeAccounts(), &fakeStorage{}, zerolog.Nop())

	admin, err := svc.Create(context.Background(), models.RoleAdmin, dto.CreateAccountRequest{
		Name: "Root", Email: "root@x.com", Password: "pw", DepartmentID: int64Ptr(2),
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, admin.DepartmentID)
}

func TestUpdateAccountKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	storage := &fakeStorage{}
	svc := NewAccountService(accounts, storage, zerolog.Nop())

	teacher, err := svc.Create(ctx, models.RoleTeacher, dto.CreateAccountRequest{
		Name: "Grace", Email: "grace@x.com", Password: "cobol",
	}, &multipart.FileHeader{Filename: "old.jpg"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, models.RoleTeacher, teacher.ID, dto.UpdateAccountRequest{
		Name: strPtr("Grace Hopper"),
	}, &multipart.FileHeader{Filename: "new.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", updated.Name)
	assert.Equal(t, "grace@x.com", updated.Email)
	assert.True(t, auth.CheckPassword(updated.Password, "cobol"))
	assert.Equal(t, []string{"stored-old.jpg"}, storage.deleted)

	_, err = svc.Update(ctx, models.RoleTeacher, 999, dto.UpdateAccountRequest{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteLastAdminIsRefused(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(newFakeAccounts(), &fakeStorage{}, zerolog.Nop())

	first, err := svc.Create(ctx, models.RoleAdmin, dto.CreateAccountRequest{Name: "A", Email: "a@x.com", Password: "p"}, nil)
	require.NoError(t, err)

	err = svc.Delete(ctx, models.RoleAdmin, first.ID)
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	second, err := svc.Create(ctx, models.RoleAdmin, dto.CreateAccountRequest{Name: "B", Email: "b@x.com", Password: "p"}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, models.RoleAdmin, second.ID))
}

func TestProfileReturnsPrincipalAccount(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	svc := NewAccountService(accounts, &fakeStorage{}, zerolog.Nop())

	student := &models.Account{Role: models.RoleStudent, Name: "Ada", Email: "ada@x.com", Password: "h"}
	require.NoError(t, accounts.Create(ctx, student))

	profile, err := svc.Profile(ctx, models.Principal{Role: models.RoleStudent, ID: student.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)

	_, err = svc.Profile(ctx, models.Principal{Role: models.RoleTeacher, ID: student.ID})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

type fakeDashboard struct{}

func (fakeDashboard) Counts(context.Context) (*models.DashboardCounts, error) {
	return &models.DashboardCounts{Students: 2, Teachers: 1}, nil
}

func TestExportAccountsWritesWorkbook(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	require.NoError(t, accounts.Create(ctx, &models.Account{Role: models.RoleStudent, Name: "Ada", Email: "ada@x.com", DepartmentID: int64Ptr(3)}))
	require.NoError(t, accounts.Create(ctx, &models.Account{Role: models.RoleStudent, Name: "Alan", Email: "alan@x.com"}))

	svc := NewDashboardService(fakeDashboard{}, accounts, zerolog.Nop())

	data, err := svc.ExportAccounts(ctx, models.RoleStudent)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Email", rows[0][2])
	assert.Equal(t, "ada@x.com", rows[1][2])
	assert.Equal(t, "3", rows[1][3])
	assert.Equal(t, "Alan", rows[2][1])

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Students)
}
