package services

import (
	"context"
	"mime/multipart"

	"visionvault_backend/internal/auth"
	"visionvault_backend/internal/config"
	"visionvault_backend/internal/email"
	"visionvault_backend/internal/logger"
	"visionvault_backend/internal/models"
	"visionvault_backend/internal/repositories"
	"visionvault_backend/internal/services/dto"
	"visionvault_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DesignerService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterDesignerRequest, image *multipart.FileHeader) (*dto.AccountResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	List(db *gorm.DB) ([]models.Designer, error)
	GetProfile(db *gorm.DB, id string) (*models.Designer, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateDesignerRequest, image *multipart.FileHeader) (*models.Designer, error)
	ForgotPassword(ctx context.Context, db *gorm.DB, emailAddr string) error
	VerifyResetToken(db *gorm.DB, token string) (*dto.ResetTokenResponse, error)
	ResetPassword(db *gorm.DB, token, password string) error
}

type designerService struct {
	repo    repositories.DesignerRepository
	creds   CredentialService
	uploads UploadService
	mailer  email.Provider
}

func NewDesignerService(
	repo repositories.DesignerRepository,
	creds CredentialService,
	uploads UploadService,
	mailer email.Provider,
) DesignerService {
	return &designerService{
		repo:    repo,
		creds:   creds,
		uploads: uploads,
		mailer:  mailer,
	}
}

func (s *designerService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterDesignerRequest, image *multipart.FileHeader) (*dto.AccountResponse, error) {
	if _, err := s.repo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !apperrors.Is(err, repositories.ErrDesignerNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	designer := &models.Designer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         req.Role,
		Experience:   req.Experience,
		Portfolio:    req.Portfolio,
	}

	if image != nil {
		name, err := s.uploads.Store(ctx, image)
		if err != nil {
			return nil, err
		}
		designer.Image = name
	}

	if err := s.repo.Create(db, designer); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "designer registered", "designer_id", designer.ID)

	return &dto.AccountResponse{
		ID:    designer.ID,
		Name:  designer.Name,
		Email: designer.Email,
		Image: designer.Image,
	}, nil
}

func (s *designerService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, token, err := s.creds.Authenticate(db, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		ID:    account.GetID(),
		Name:  account.GetName(),
		Email: account.GetEmail(),
		Token: token,
	}, nil
}

func (s *designerService) List(db *gorm.DB) ([]models.Designer, error) {
	return s.repo.FindAll(db)
}

func (s *designerService) GetProfile(db *gorm.DB, id string) (*models.Designer, error) {
	designer, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDesignerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Designer not found")
		}
		return nil, err
	}
	return designer, nil
}

func (s *designerService) UpdateProfile(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateDesignerRequest, image *multipart.FileHeader) (*models.Designer, error) {
	designer, err := s.GetProfile(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		designer.Name = *req.Name
	}
	if req.Email != nil {
		designer.Email = *req.Email
	}
	if req.Phone != nil {
		designer.Phone = *req.Phone
	}
	if req.Experience != nil {
		designer.Experience = *req.Experience
	}
	if req.Portfolio != nil {
		designer.Portfolio = *req.Portfolio
	}

	if image != nil {
		name, err := s.uploads.Store(ctx, image)
		if err != nil {
			return nil, err
		}
		designer.Image = name
	}

	if err := s.repo.Update(db, designer); err != nil {
		return nil, err
	}

	return designer, nil
}

func (s *designerService) ForgotPassword(ctx context.Context, db *gorm.DB, emailAddr string) error {
	account, token, err := s.creds.IssueResetToken(db, emailAddr)
	if err != nil {
		return err
	}

	resetURL := config.GetConfig().Frontend.DesignerResetURL + "/" + token
	sendResetEmail(ctx, s.mailer, account.GetEmail(), resetURL)
	return nil
}

func (s *designerService) VerifyResetToken(db *gorm.DB, token string) (*dto.ResetTokenResponse, error) {
	account, err := s.creds.VerifyResetToken(db, token)
	if err != nil {
		return nil, err
	}
	return &dto.ResetTokenResponse{Email: account.GetEmail()}, nil
}

func (s *designerService) ResetPassword(db *gorm.DB, token, password string) error {
	return s.creds.ResetPassword(db, token, password)
}

// sendResetEmail dispatches the reset link without blocking the request.
// Delivery failures are logged; the caller has already committed the
// token, so the user can simply retry.
func sendResetEmail(ctx context.Context, mailer email.Provider, to, resetURL string) {
	msg := email.PasswordResetMessage(to, resetURL)
	go func() {
		if err := mailer.Send(msg); err != nil {
			logger.CtxWithError(ctx, "failed to send password reset email", err, "to", to)
		}
	}()
}
