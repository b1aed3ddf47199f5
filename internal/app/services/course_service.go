package services

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
)

// linkValidator checks decoded course links against their binding tags,
// the same tags gin applies to request bodies.
var linkValidator = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// CourseService handles course operations
type CourseService struct {
	courseRepo CourseStore
	images     imageKeeper
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo CourseStore, storage filestorage.FileStorage, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		images:     imageKeeper{storage: storage, logger: logger},
		logger:     logger,
	}
}

// ParseLinks decodes the JSON array sent in the multipart "links" field.
// An empty string yields no links.
func ParseLinks(raw string) ([]models.CourseLink, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []models.CourseLink{}, nil
	}

	var links []models.CourseLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, apperrors.NewValidationError("links must be a JSON array of {link_name, link_url}")
	}

	for i := range links {
		links[i].ID = 0
		links[i].LinkName = strings.TrimSpace(links[i].LinkName)
		links[i].LinkURL = strings.TrimSpace(links[i].LinkURL)
		if err := linkValidator.Struct(links[i]); err != nil {
			return nil, apperrors.NewValidationError("every link needs a link_name and a valid link_url")
		}
	}
	if links == nil {
		links = []models.CourseLink{}
	}
	return links, nil
}

// ListCourses returns courses matching the filter with the total match count
func (s *CourseService) ListCourses(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error) {
	return s.courseRepo.List(ctx, filter)
}

// ListForPrincipal lists the courses a teacher owns; admins see every course
func (s *CourseService) ListForPrincipal(ctx context.Context, principal models.Principal, page, size int) ([]*models.Course, int64, error) {
	filter := dto.CourseFilter{Page: page, Size: size}
	if !principal.IsAdmin() {
		filter.TeacherID = &principal.ID
	}
	return s.courseRepo.List(ctx, filter)
}

// ListByYear returns the courses of one year
func (s *CourseService) ListByYear(ctx context.Context, year string) ([]*models.Course, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil, apperrors.NewValidationError("year cannot be empty")
	}
	courses, _, err := s.courseRepo.List(ctx, dto.CourseFilter{Year: &year})
	return courses, err
}

// GetCourse retrieves a course with its links
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse stores the course, its links and its image. Courses created by
// a teacher belong to that teacher; admin-created courses have no owner.
func (s *CourseService) CreateCourse(ctx context.Context, principal models.Principal, req dto.CreateCourseRequest, image *multipart.FileHeader) (*models.Course, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}

	links, err := ParseLinks(req.Links)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:           title,
		Tag:             strings.TrimSpace(req.Tag),
		CategoryID:      req.CategoryID,
		DepartmentID:    req.DepartmentID,
		BenefitOne:      req.BenefitOne,
		BenefitTwo:      req.BenefitTwo,
		PrerequisiteOne: req.PrerequisiteOne,
		PrerequisiteTwo: req.PrerequisiteTwo,
		Description:     req.Description,
		Year:            strings.TrimSpace(req.Year),
		Links:           links,
	}
	if !principal.IsAdmin() {
		owner := principal.ID
		course.TeacherID = &owner
	}

	if course.Image, err = s.images.save(image); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.images.discard(course.Image)
		return nil, err
	}

	s.logger.Info().Int64("courseID", course.ID).Str("role", principal.Role.String()).Int64("principalID", principal.ID).Int("links", len(links)).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces the supplied fields. Links, when supplied, replace
// all existing links. A new image replaces the stored one.
func (s *CourseService) UpdateCourse(ctx context.Context, principal models.Principal, id int64, req dto.UpdateCourseRequest, image *multipart.FileHeader) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title cannot be empty")
		}
		course.Title = title
	}
	if req.Tag != nil {
		course.Tag = strings.TrimSpace(*req.Tag)
	}
	if req.CategoryID != nil {
		course.CategoryID = req.CategoryID
	}
	if req.DepartmentID != nil {
		course.DepartmentID = req.DepartmentID
	}
	if req.BenefitOne != nil {
		course.BenefitOne = *req.BenefitOne
	}
	if req.BenefitTwo != nil {
		course.BenefitTwo = *req.BenefitTwo
	}
	if req.PrerequisiteOne != nil {
		course.PrerequisiteOne = *req.PrerequisiteOne
	}
	if req.PrerequisiteTwo != nil {
		course.PrerequisiteTwo = *req.PrerequisiteTwo
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Year != nil {
		course.Year = strings.TrimSpace(*req.Year)
	}

	replaceLinks := req.Links != nil
	if replaceLinks {
		if course.Links, err = ParseLinks(*req.Links); err != nil {
			return nil, err
		}
	}

	newImage, err := s.images.save(image)
	if err != nil {
		return nil, err
	}
	oldImage := course.Image
	if newImage != nil {
		course.Image = newImage
	}

	if err := s.courseRepo.Update(ctx, course, replaceLinks); err != nil {
		s.images.discard(newImage)
		return nil, err
	}
	if newImage != nil {
		s.images.discard(oldImage)
	}

	s.logger.Info().Int64("courseID", course.ID).Bool("linksReplaced", replaceLinks).Msg("Course updated")
	return course, nil
}

// DeleteCourse removes the course, its links and its image
func (s *CourseService) DeleteCourse(ctx context.Context, principal models.Principal, id int64) error {
	course, err := s.ownedCourse(ctx, principal, id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.discard(course.Image)
	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}

// ownedCourse loads a course the principal may modify. Teachers may only
// modify their own courses; admins may modify any.
func (s *CourseService) ownedCourse(ctx context.Context, principal models.Principal, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.IsAdmin() {
		return course, nil
	}
	if course.TeacherID == nil || *course.TeacherID != principal.ID {
		return nil, apperrors.NewCustomError(apperrors.ErrPermissionDenied, "you can only modify your own courses")
	}
	return course, nil
}
