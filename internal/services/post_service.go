package services

import (
	"context"
	"mime/multipart"

	"visionvault_backend/internal/logger"
	"visionvault_backend/internal/models"
	"visionvault_backend/internal/repositories"
	"visionvault_backend/internal/services/dto"
	"visionvault_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PostService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error)
	List(db *gorm.DB) ([]dto.ContentResponse, error)
	ListByDesigner(db *gorm.DB, designerID string) ([]dto.ContentResponse, error)
	Get(db *gorm.DB, id string) (*dto.ContentResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type postService struct {
	repo         repositories.PostRepository
	designerRepo repositories.DesignerRepository
	uploads      UploadService
}

func NewPostService(
	repo repositories.PostRepository,
	designerRepo repositories.DesignerRepository,
	uploads UploadService,
) PostService {
	return &postService{
		repo:         repo,
		designerRepo: designerRepo,
		uploads:      uploads,
	}
}

func (s *postService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error) {
	designer, err := s.designerRepo.FindByID(db, req.CreatedBy)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDesignerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Designer not found")
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

	post := &models.Post{
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		ReferencePics: pics,
		CreatedByID:   designer.ID,
		CreatedBy:     designer,
	}

	if err := s.repo.Create(db, post); err != nil {
		for _, name := range pics {
			s.uploads.Remove(ctx, name)
		}
		return nil, err
	}

	logger.CtxInfo(ctx, "post created", "post_id", post.ID, "designer_id", designer.ID)

	return postResponse(post), nil
}

func (s *postService) List(db *gorm.DB) ([]dto.ContentResponse, error) {
	posts, err := s.repo.FindAll(db)
	if err != nil {
		return nil, err
	}
	return postResponses(posts), nil
}

func (s *postService) ListByDesigner(db *gorm.DB, designerID string) ([]dto.ContentResponse, error) {
	posts, err := s.repo.FindByDesigner(db, designerID)
	if err != nil {
		return nil, err
	}
	return postResponses(posts), nil
}

func (s *postService) Get(db *gorm.DB, id string) (*dto.ContentResponse, error) {
	post, err := s.findPost(db, id)
	if err != nil {
		return nil, err
	}
	return postResponse(post), nil
}

func (s *postService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateContentRequest, files []*multipart.FileHeader) (*dto.ContentResponse, error) {
	post, err := s.findPost(db, id)
	if err != nil {
		return nil, err
	}

	current := []string(post.ReferencePics)
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
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Type != nil {
		post.Type = *req.Type
	}
	post.ReferencePics = append(kept, added...)

	if err := s.repo.Update(db, post); err != nil {
		for _, name := range added {
			s.uploads.Remove(ctx, name)
		}
		return nil, err
	}

	for _, name := range removed {
		s.uploads.Remove(ctx, name)
	}

	return postResponse(post), nil
}

func (s *postService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	post, err := s.findPost(db, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(db, id); err != nil {
		return err
	}

	for _, name := range post.ReferencePics {
		s.uploads.Remove(ctx, name)
	}

	logger.CtxInfo(ctx, "post deleted", "post_id", id)
	return nil
}

func (s *postService) findPost(db *gorm.DB, id string) (*models.Post, error) {
	post, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err, "Post not found")
		}
		return nil, err
	}
	return post, nil
}

func postResponse(p *models.Post) *dto.ContentResponse {
	resp := &dto.ContentResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Type:          p.Type,
		ReferencePics: p.ReferencePics,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if resp.ReferencePics == nil {
		resp.ReferencePics = []string{}
	}
	if p.CreatedBy != nil {
		resp.CreatedBy = &dto.OwnerResponse{
			ID:    p.CreatedBy.ID,
			Name:  p.CreatedBy.Name,
			Email: p.CreatedBy.Email,
		}
	}
	return resp
}

func postResponses(posts []models.Post) []dto.ContentResponse {
	responses := make([]dto.ContentResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *postResponse(&posts[i]))
	}
	return responses
}
