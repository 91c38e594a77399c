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

type ConsumerService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterConsumerRequest, image *multipart.FileHeader) (*dto.AccountResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(db *gorm.DB, id string) (*models.Consumer, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateConsumerRequest, image *multipart.FileHeader) (*models.Consumer, error)
	ForgotPassword(ctx context.Context, db *gorm.DB, emailAddr string) error
	VerifyResetToken(db *gorm.DB, token string) (*dto.ResetTokenResponse, error)
	ResetPassword(db *gorm.DB, token, password string) error
}

type consumerService struct {
	repo    repositories.ConsumerRepository
	creds   CredentialService
	uploads UploadService
	mailer  email.Provider
}

func NewConsumerService(
	repo repositories.ConsumerRepository,
	creds CredentialService,
	uploads UploadService,
	mailer email.Provider,
) ConsumerService {
	return &consumerService{
		repo:    repo,
		creds:   creds,
		uploads: uploads,
		mailer:  mailer,
	}
}

func (s *consumerService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterConsumerRequest, image *multipart.FileHeader) (*dto.AccountResponse, error) {
	if _, err := s.repo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !apperrors.Is(err, repositories.ErrConsumerNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	consumer := &models.Consumer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         req.Role,
	}

	if image != nil {
		name, err := s.uploads.Store(ctx, image)
		if err != nil {
			return nil, err
		}
		consumer.Image = name
	}

	if err := s.repo.Create(db, consumer); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "consumer registered", "consumer_id", consumer.ID)

	return &dto.AccountResponse{
		ID:    consumer.ID,
		Name:  consumer.Name,
		Email: consumer.Email,
		Image: consumer.Image,
	}, nil
}

func (s *consumerService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
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

func (s *consumerService) GetProfile(db *gorm.DB, id string) (*models.Consumer, error) {
	consumer, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConsumerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Consumer not found")
		}
		return nil, err
	}
	return consumer, nil
}

func (s *consumerService) UpdateProfile(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateConsumerRequest, image *multipart.FileHeader) (*models.Consumer, error) {
	consumer, err := s.GetProfile(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		consumer.Name = *req.Name
	}
	if req.Email != nil {
		consumer.Email = *req.Email
	}
	if req.Phone != nil {
		consumer.Phone = *req.Phone
	}

	if image != nil {
		name, err := s.uploads.Store(ctx, image)
		if err != nil {
			return nil, err
		}
		consumer.Image = name
	}

	if err := s.repo.Update(db, consumer); err != nil {
		return nil, err
	}

	return consumer, nil
}

func (s *consumerService) ForgotPassword(ctx context.Context, db *gorm.DB, emailAddr string) error {
	account, token, err := s.creds.IssueResetToken(db, emailAddr)
	if err != nil {
		return err
	}

	resetURL := config.GetConfig().Frontend.ConsumerResetURL + "/" + token
	sendResetEmail(ctx, s.mailer, account.GetEmail(), resetURL)
	return nil
}

func (s *consumerService) VerifyResetToken(db *gorm.DB, token string) (*dto.ResetTokenResponse, error) {
	account, err := s.creds.VerifyResetToken(db, token)
	if err != nil {
		return nil, err
	}
	return &dto.ResetTokenResponse{Email: account.GetEmail()}, nil
}

func (s *consumerService) ResetPassword(db *gorm.DB, token, password string) error {
	return s.creds.ResetPassword(db, token, password)
}
