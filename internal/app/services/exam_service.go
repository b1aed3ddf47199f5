package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
)

// ExamService handles exam operations
type ExamService struct {
	examRepo ExamStore
	images   imageKeeper
	logger   zerolog.Logger
}

// NewExamService creates a new ExamService
func NewExamService(examRepo ExamStore, storage filestorage.FileStorage, logger zerolog.Logger) *ExamService {
	return &ExamService{
		examRepo: examRepo,
		images:   imageKeeper{storage: storage, logger: logger},
		logger:   logger,
	}
}

// GetAllExams returns every exam
func (s *ExamService) GetAllExams(ctx context.Context) ([]*models.Exam, error) {
	return s.examRepo.GetAll(ctx)
}

// CreateExam stores an exam with an optional image
func (s *ExamService) CreateExam(ctx context.Context, req dto.CreateExamRequest, image *multipart.FileHeader) (*models.Exam, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}

	exam := &models.Exam{
		Title:       title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}

	var err error
	if exam.Image, err = s.images.save(image); err != nil {
		return nil, err
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		s.images.discard(exam.Image)
		return nil, err
	}

	s.logger.Info().Int64("examID", exam.ID).Msg("Exam created")
	return exam, nil
}

// UpdateExam replaces the supplied fields and optionally the image
func (s *ExamService) UpdateExam(ctx context.Context, id int64, req dto.UpdateExamRequest, image *multipart.FileHeader) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title cannot be empty")
		}
		exam.Title = title
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.CategoryID != nil {
		exam.CategoryID = req.CategoryID
	}

	newImage, err := s.images.save(image)
	if err != nil {
		return nil, err
	}
	oldImage := exam.Image
	if newImage != nil {
		exam.Image = newImage
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		s.images.discard(newImage)
		return nil, err
	}
	if newImage != nil {
		s.images.discard(oldImage)
	}

	s.logger.Info().Int64("examID", exam.ID).Msg("Exam updated")
	return exam, nil
}

// DeleteExam removes an exam and its image
func (s *ExamService) DeleteExam(ctx context.Context, id int64) error {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.examRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.discard(exam.Image)
	s.logger.Info().Int64("examID", id).Msg("Exam deleted")
	return nil
}
