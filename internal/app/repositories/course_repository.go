package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// CourseRepository handles courses and their links. Writes touching both
// tables run in one transaction.
type CourseRepository struct {
	db *db.MySQLDB
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *db.MySQLDB) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

var courseColumns = []string{
	"c.id", "c.title", "c.tag", "c.category_id", "c.department_id", "c.teacher_id",
	"c.benefit_one", "c.benefit_two", "c.prerequisite_one", "c.prerequisite_two",
	"c.image", "c.description", "c.year", "c.created_at",
	"cat.name", "d.name",
}

func classifyCourse(err error) error {
	return dberrors.Classify(err, apperrors.ErrCourseNotFound, apperrors.ErrConflict)
}

func (r *CourseRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		From("courses c").
		LeftJoin("categories cat ON cat.id = c.category_id").
		LeftJoin("departments d ON d.id = c.department_id")
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var (
		course                       models.Course
		categoryID, departmentID     sql.NullInt64
		teacherID                    sql.NullInt64
		benefitOne, benefitTwo       sql.NullString
		prereqOne, prereqTwo         sql.NullString
		image, description           sql.NullString
		categoryName, departmentName sql.NullString
	)
	if err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Tag,
		&categoryID,
		&departmentID,
		&teacherID,
		&benefitOne,
		&benefitTwo,
		&prereqOne,
		&prereqTwo,
		&image,
		&description,
		&course.Year,
		&course.CreatedAt,
		&categoryName,
		&departmentName,
	); err != nil {
		return nil, err
	}

	course.CategoryID = helpers.Int64Ptr(categoryID)
	course.DepartmentID = helpers.Int64Ptr(departmentID)
	course.TeacherID = helpers.Int64Ptr(teacherID)
	course.BenefitOne = benefitOne.String
	course.BenefitTwo = benefitTwo.String
	course.PrerequisiteOne = prereqOne.String
	course.PrerequisiteTwo = prereqTwo.String
	course.Image = helpers.StringPtr(image)
	course.Description = description.String
	course.CategoryName = helpers.StringPtr(categoryName)
	course.DepartmentName = helpers.StringPtr(departmentName)
	course.Links = []models.CourseLink{}
	return &course, nil
}

// GetByID retrieves a course with its links
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.baseSelect().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	course, err := scanCourse(r.db.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, classifyCourse(err)
	}

	if err := r.attachLinks(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}
	return course, nil
}

// Exists reports whether a course with id exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.sb.Select("1").From("courses").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course query: %w", err)
	}

	var found int
	err = r.db.DB.QueryRowContext(ctx, query, args...).Scan(&found)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, apperrors.NewStorageError(err)
	}
	return true, nil
}

// List returns courses matching the filter, newest first, with the total
// number of matches. A filter Size of zero returns every match.
func (r *CourseRepository) List(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error) {
	where := squirrel.And{}
	if filter.TeacherID != nil {
		where = append(where, squirrel.Eq{"c.teacher_id": *filter.TeacherID})
	}
	if filter.Year != nil {
		where = append(where, squirrel.Eq{"c.year": *filter.Year})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("courses c").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build course count query: %w", err)
	}

	var total int64
	if err := r.db.DB.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}
	if total == 0 {
		return []*models.Course{}, 0, nil
	}

	listQuery := r.baseSelect().Where(where).OrderBy("c.created_at DESC", "c.id DESC")
	if filter.Size > 0 {
		offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
		listQuery = listQuery.Limit(uint64(limit)).Offset(offset)
	}

	query, args, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build course list query: %w", err)
	}

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, apperrors.NewStorageError(err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}

	if err := r.attachLinks(ctx, courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// attachLinks loads the links of all given courses with a single query
func (r *CourseRepository) attachLinks(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Course, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
		ids = append(ids, course.ID)
	}

	query, args, err := r.sb.Select("id", "course_id", "link_name", "link_url").
		From("course_links").
		Where(squirrel.Eq{"course_id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course link query: %w", err)
	}

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var link models.CourseLink
		if err := rows.Scan(&link.ID, &link.CourseID, &link.LinkName, &link.LinkURL); err != nil {
			return apperrors.NewStorageError(err)
		}
		if course, ok := byID[link.CourseID]; ok {
			course.Links = append(course.Links, link)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Create inserts the course and its links atomically and sets the IDs
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO courses (title, tag, category_id, department_id, teacher_id,
				benefit_one, benefit_two, prerequisite_one, prerequisite_two,
				image, description, year)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`

		result, err := tx.ExecContext(ctx, query,
			course.Title,
			course.Tag,
			helpers.GetNullInt64(course.CategoryID),
			helpers.GetNullInt64(course.DepartmentID),
			helpers.GetNullInt64(course.TeacherID),
			course.BenefitOne,
			course.BenefitTwo,
			course.PrerequisiteOne,
			course.PrerequisiteTwo,
			helpers.GetNullString(course.Image),
			course.Description,
			course.Year,
		)
		if err != nil {
			return classifyCourse(err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return apperrors.NewStorageError(err)
		}
		course.ID = id

		return insertLinks(ctx, tx, course)
	})
}

// Update rewrites the course row. When replaceLinks is set every existing
// link is removed and course.Links inserted instead, in the same transaction.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course, replaceLinks bool) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE courses
			SET title = ?, tag = ?, category_id = ?, department_id = ?,
				benefit_one = ?, benefit_two = ?, prerequisite_one = ?, prerequisite_two = ?,
				image = ?, description = ?, year = ?
			WHERE id = ?
		`

		result, err := tx.ExecContext(ctx, query,
			course.Title,
			course.Tag,
			helpers.GetNullInt64(course.CategoryID),
			helpers.GetNullInt64(course.DepartmentID),
			course.BenefitOne,
			course.BenefitTwo,
			course.PrerequisiteOne,
			course.PrerequisiteTwo,
			helpers.GetNullString(course.Image),
			course.Description,
			course.Year,
			course.ID,
		)
		if err != nil {
			return classifyCourse(err)
		}
		if err := requireAffected(result, apperrors.ErrCourseNotFound); err != nil {
			return err
		}

		if !replaceLinks {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM course_links WHERE course_id = ?`, course.ID); err != nil {
			return classifyCourse(err)
		}
		return insertLinks(ctx, tx, course)
	})
}

// Delete removes the course's links and then the course in one transaction
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM course_links WHERE course_id = ?`, id); err != nil {
			return classifyCourse(err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
		if err != nil {
			return classifyCourse(err)
		}
		if err := requireAffected(result, apperrors.ErrCourseNotFound); err != nil {
			return err
		}

		logger.Debug().Int64("courseID", id).Msg("Course and links deleted")
		return nil
	})
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db.DB, "courses")
}

func insertLinks(ctx context.Context, tx *sql.Tx, course *models.Course) error {
	for i := range course.Links {
		link := &course.Links[i]
		link.CourseID = course.ID

		result, err := tx.ExecContext(ctx,
			`INSERT INTO course_links (course_id, link_name, link_url) VALUES (?, ?, ?)`,
			link.CourseID, link.LinkName, link.LinkURL,
		)
		if err != nil {
			return classifyCourse(err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return apperrors.NewStorageError(err)
		}
		link.ID = id
	}
	return nil
}
