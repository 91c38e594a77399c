package services

import (
	"context"
	"mime/multipart"
	"time"

	"visionvault_backend/internal/logger"
	"visionvault_backend/internal/models"
	"visionvault_backend/internal/repositories"
	"visionvault_backend/internal/services/dto"
	"visionvault_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// currentJobWindow is how far back "current" job posts reach.
const currentJobWindow = 30 * 24 * time.Hour

type JobPostService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error)
	List(db *gorm.DB) ([]dto.ContentResponse, error)
	ListCurrent(db *gorm.DB) ([]dto.ContentResponse, error)
	ListByConsumer(db *gorm.DB, consumerID string) ([]dto.ContentResponse, error)
	Get(db *gorm.DB, id string) (*dto.ContentResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type jobPostService struct {
	repo         repositories.JobPostRepository
	consumerRepo repositories.ConsumerRepository
	uploads      UploadService
}

func NewJobPostService(
	repo repositories.JobPostRepository,
	consumerRepo repositories.ConsumerRepository,
	uploads UploadService,
) JobPostService {
	return &jobPostService{
		repo:         repo,
		consumerRepo: consumerRepo,
		uploads:      uploads,
	}
}

func (s *jobPostService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error) {
	consumer, err := s.consumerRepo.FindByID(db, req.CreatedBy)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConsumerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Consumer not found")
		}
		return nil, err
	}

	if len(files) > maxAttachments() {
		return nil, apperrors.ErrTooManyAttachments
	}

	pics, err := s.uploads.StoreAll(ctx, files)
	if err != nil {
		return nil, err
	}

	jobPost := &models.JobPost{
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		ReferencePics: pics,
		CreatedByID:   consumer.ID,
		CreatedBy:     consumer,
	}

	if err := s.repo.Create(db, jobPost); err != nil {
		for _, name := range pics {
			s.uploads.Remove(ctx, name)
		}
		return nil, err
	}

	logger.CtxInfo(ctx, "job post created", "job_post_id", jobPost.ID, "consumer_id", consumer.ID)

	return jobPostResponse(jobPost), nil
}

func (s *jobPostService) List(db *gorm.DB) ([]dto.ContentResponse, error) {
	jobPosts, err := s.repo.FindAll(db)
	if err != nil {
		return nil, err
	}
	return jobPostResponses(jobPosts), nil
}

func (s *jobPostService) ListCurrent(db *gorm.DB) ([]dto.ContentResponse, error) {
	jobPosts, err := s.repo.FindCreatedSince(db, time.Now().Add(-currentJobWindow))
	if err != nil {
		return nil, err
	}
	return jobPostResponses(jobPosts), nil
}

func (s *jobPostService) ListByConsumer(db *gorm.DB, consumerID string) ([]dto.ContentResponse, error) {
	jobPosts, err := s.repo.FindByConsumer(db, consumerID)
	if err != nil {
		return nil, err
	}
	return jobPostResponses(jobPosts), nil
}

func (s *jobPostService) Get(db *gorm.DB, id string) (*dto.ContentResponse, error) {
	jobPost, err := s.findJobPost(db, id)
	if err != nil {
		return nil, err
	}
	return jobPostResponse(jobPost), nil
}

func (s *jobPostService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error) {
	jobPost, err := s.findJobPost(db, id)
	if err != nil {
		return nil, err
	}

	current := []string(jobPost.ReferencePics)
	kept := current
	var removed []string
	if keep, provided := parseKeepList(req.ExistingImages); provided {
		kept, removed = diffAttachments(current, keep)
	}

	if len(kept)+len(files) > maxAttachments() {
		return nil, apperrors.ErrTooManyAttachments
	}

	added, err := s.uploads.StoreAll(ctx, files)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		jobPost.Title = *req.Title
	}
	if req.Description != nil {
		jobPost.Description = *req.Description
	}
	if req.Type != nil {
		jobPost.Type = *req.Type
	}
	jobPost.ReferencePics = append(kept, added...)

	if err := s.repo.Update(db, jobPost); err != nil {
		for _, name := range added {
			s.uploads.Remove(ctx, name)
		}
		return nil, err
	}

	// Storage cleanup only after the document update succeeded.
	for _, name := range removed {
		s.uploads.Remove(ctx, name)
	}

	return jobPostResponse(jobPost), nil
}

func (s *jobPostService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	jobPost, err := s.findJobPost(db, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(db, id); err != nil {
		return err
	}

	for _, name := range jobPost.ReferencePics {
		s.uploads.Remove(ctx, name)
	}

	logger.CtxInfo(ctx, "job post deleted", "job_post_id", id)
	return nil
}

func (s *jobPostService) findJobPost(db *gorm.DB, id string) (*models.JobPost, error) {
	jobPost, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job post not found")
		}
		return nil, err
	}
	return jobPost, nil
}

func jobPostResponse(jp *models.JobPost) *dto.ContentResponse {
	resp := &dto.ContentResponse{
		ID:            jp.ID,
		Title:         jp.Title,
		Description:   jp.Description,
		Type:          jp.Type,
		ReferencePics: jp.ReferencePics,
		CreatedAt:     jp.CreatedAt,
		UpdatedAt:     jp.UpdatedAt,
	}
	if resp.ReferencePics == nil {
		resp.ReferencePics = []string{}
	}
	if jp.CreatedBy != nil {
		resp.CreatedBy = &dto.OwnerResponse{
			ID:    jp.CreatedBy.ID,
			Name:  jp.CreatedBy.Name,
			Email: jp.CreatedBy.Email,
		}
	}
	return resp
}

func jobPostResponses(jobPosts []models.JobPost) []dto.ContentResponse {
	responses := make([]dto.ContentResponse, 0, len(jobPosts))
	for i := range jobPosts {
		responses = append(responses, *jobPostResponse(&jobPosts[i]))
	}
	return responses
}
