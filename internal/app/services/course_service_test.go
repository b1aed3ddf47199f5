package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

var (
	teacherPrincipal = models.Principal{Role: models.RoleTeacher, ID: 3, Email: "t@x.com"}
	otherTeacher     = models.Principal{Role: models.RoleTeacher, ID: 4, Email: "o@x.com"}
	adminPrincipal   = models.Principal{Role: models.RoleAdmin, ID: 1, Email: "root@x.com"}
)

func strPtr(s string) *string { return &s }

func TestParseLinks(t *testing.T) {
	links, err := ParseLinks(`[{"link_name":"docs","link_url":"https://go.dev/doc"}]`)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "docs", links[0].LinkName)

	links, err = ParseLinks("")
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.NotNil(t, links)

	_, err = ParseLinks(`not json`)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = ParseLinks(`[{"link_name":"docs","link_url":"not a url"}]`)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = ParseLinks(`[{"link_name":"","link_url":"https://go.dev"}]`)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourseAssignsOwner(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	storage := &fakeStorage{}
	svc := NewCourseService(courses, storage, zerolog.Nop())

	course, err := svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{
		Title: " Go ",
		Year:  "2024",
		Links: `[{"link_name":"docs","link_url":"https://go.dev/doc"}]`,
	}, &multipart.FileHeader{Filename: "cover.png"})
	require.NoError(t, err)

	assert.Equal(t, "Go", course.Title)
	require.NotNil(t, course.TeacherID)
	assert.Equal(t, teacherPrincipal.ID, *course.TeacherID)
	require.NotNil(t, course.Image)
	assert.Equal(t, "stored-cover.png", *course.Image)
	assert.Len(t, course.Links, 1)

	adminCourse, err := svc.CreateCourse(ctx, adminPrincipal, dto.CreateCourseRequest{Title: "Ops"}, nil)
	require.NoError(t, err)
	assert.Nil(t, adminCourse.TeacherID)
	assert.Nil(t, adminCourse.Image)
}

func TestCreateCourseRejectsBadImage(t *testing.T) {
	storage := &fakeStorage{failOn: "virus.exe"}
	svc := NewCourseService(newFakeCourses(), storage, zerolog.Nop())

	_, err := svc.CreateCourse(context.Background(), teacherPrincipal, dto.CreateCourseRequest{Title: "Go"},
		&multipart.FileHeader{Filename: "virus.exe"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourseRejectsOversizedImage(t *testing.T) {
	courses := newFakeCourses()
	storage := &fakeStorage{maxSize: 1 << 20}
	svc := NewCourseService(courses, storage, zerolog.Nop())

	_, err := svc.CreateCourse(context.Background(), teacherPrincipal, dto.CreateCourseRequest{Title: "Go"},
		&multipart.FileHeader{Filename: "big.png", Size: 5 << 20})
	assert.ErrorIs(t, err, apperrors.ErrPayloadTooLarge)
	assert.Empty(t, courses.rows)
	assert.Empty(t, storage.saved)
}

func TestUpdateCourseOwnership(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	svc := NewCourseService(courses, &fakeStorage{}, zerolog.Nop())

	course, err := svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{Title: "Go"}, nil)
	require.NoError(t, err)

	_, err = svc.UpdateCourse(ctx, otherTeacher, course.ID, dto.UpdateCourseRequest{Title: strPtr("Hijacked")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateCourse(ctx, adminPrincipal, course.ID, dto.UpdateCourseRequest{Title: strPtr("Go 2")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go 2", updated.Title)
	assert.False(t, courses.replaced)

	err = svc.DeleteCourse(ctx, otherTeacher, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateCourseReplacesLinksAndImage(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	storage := &fakeStorage{}
	svc := NewCourseService(courses, storage, zerolog.Nop())

	course, err := svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{
		Title: "Go",
		Links: `[{"link_name":"a","link_url":"https://a.example"},{"link_name":"b","link_url":"https://b.example"}]`,
	}, &multipart.FileHeader{Filename: "old.png"})
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(ctx, teacherPrincipal, course.ID, dto.UpdateCourseRequest{
		Links: strPtr(`[{"link_name":"c","link_url":"https://c.example"}]`),
	}, &multipart.FileHeader{Filename: "new.png"})
	require.NoError(t, err)

	assert.True(t, courses.replaced)
	require.Len(t, updated.Links, 1)
	assert.Equal(t, "c", updated.Links[0].LinkName)
	assert.Equal(t, "stored-new.png", *updated.Image)
	assert.Equal(t, []string{"stored-old.png"}, storage.deleted)
}

func TestUpdateCourseFailureKeepsOldImage(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	storage := &fakeStorage{}
	svc := NewCourseService(courses, storage, zerolog.Nop())

	course, err := svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{Title: "Go"}, &multipart.FileHeader{Filename: "old.png"})
	require.NoError(t, err)

	courses.failUpdate = apperrors.NewStorageError(errors.New("deadlock"))
	_, err = svc.UpdateCourse(ctx, teacherPrincipal, course.ID, dto.UpdateCourseRequest{}, &multipart.FileHeader{Filename: "new.png"})
	assert.ErrorIs(t, err, apperrors.ErrStorage)

	// Only the freshly saved upload is cleaned up.
	assert.Equal(t, []string{"stored-new.png"}, storage.deleted)
}

func TestDeleteCourseRemovesImage(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	storage := &fakeStorage{}
	svc := NewCourseService(courses, storage, zerolog.Nop())

	course, err := svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{Title: "Go"}, &multipart.FileHeader{Filename: "cover.png"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, teacherPrincipal, course.ID))
	assert.Equal(t, []string{"stored-cover.png"}, storage.deleted)

	_, err = svc.GetCourse(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListForPrincipal(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	svc := NewCourseService(courses, &fakeStorage{}, zerolog.Nop())

	_, _, err := svc.ListForPrincipal(ctx, teacherPrincipal, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, courses.lastFilter.TeacherID)
	assert.Equal(t, teacherPrincipal.ID, *courses.lastFilter.TeacherID)

	_, _, err = svc.ListForPrincipal(ctx, adminPrincipal, 1, 10)
	require.NoError(t, err)
	assert.Nil(t, courses.lastFilter.TeacherID)
}

func TestListByYear(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	svc := NewCourseService(courses, &fakeStorage{}, zerolog.Nop())

	_, err := svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{Title: "Go", Year: "2024"}, nil)
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, teacherPrincipal, dto.CreateCourseRequest{Title: "C", Year: "1989"}, nil)
	require.NoError(t, err)

	found, err := svc.ListByYear(ctx, "2024")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Go", found[0].Title)

	_, err = svc.ListByYear(ctx, " ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
