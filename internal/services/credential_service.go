package services

import (
	"time"

	"visionvault_backend/internal/auth"
	"visionvault_backend/internal/models"
	"visionvault_backend/internal/repositories"
	"visionvault_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CredentialService implements login and the password-reset flow once
// for every account type that satisfies models.Credentialed.
type CredentialService interface {
	Authenticate(db *gorm.DB, email, password string) (models.Credentialed, string, error)
	IssueResetToken(db *gorm.DB, email string) (models.Credentialed, string, error)
	VerifyResetToken(db *gorm.DB, token string) (models.Credentialed, error)
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type credentialService struct {
	store repositories.CredentialStore
}

func NewCredentialService(store repositories.CredentialStore) CredentialService {
	return &credentialService{store: store}
}

// Authenticate looks the account up by email and checks the password.
// Unknown email and wrong password produce the same error so the
// response never reveals whether the account exists.
func (s *credentialService) Authenticate(db *gorm.DB, email, password string) (models.Credentialed, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.ErrMissingCredentials
	}

	account, err := s.store.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, s.store.NotFoundErr()) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPasswordHash(password, account.GetPasswordHash()) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(account.GetID(), account.GetRole())
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// IssueResetToken generates a reset token for the account and persists
// its digest with a fresh expiry. The raw token is returned for the
// reset email and never stored.
func (s *credentialService) IssueResetToken(db *gorm.DB, email string) (models.Credentialed, string, error) {
	account, err := s.store.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, s.store.NotFoundErr()) {
			return nil, "", apperrors.ErrNotFound(err, "No user with that email")
		}
		return nil, "", err
	}

	token, digest, err := auth.NewResetToken()
	if err != nil {
		return nil, "", err
	}

	account.SetResetToken(digest, auth.ResetTokenExpiry())
	if err := s.store.Save(db, account); err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// VerifyResetToken resolves a raw token to its account. Unknown,
// consumed and expired tokens all fail the same way.
func (s *credentialService) VerifyResetToken(db *gorm.DB, token string) (models.Credentialed, error) {
	digest := auth.HashResetToken(token)

	account, err := s.store.FindByResetDigest(db, digest, time.Now())
	if err != nil {
		if apperrors.Is(err, s.store.NotFoundErr()) {
			return nil, apperrors.ErrInvalidResetToken
		}
		return nil, err
	}

	return account, nil
}

// ResetPassword consumes a reset token: the password is re-hashed and
// both token fields are cleared, so the token can never be used twice.
func (s *credentialService) ResetPassword(db *gorm.DB, token, newPassword string) error {
	account, err := s.VerifyResetToken(db, token)
	if err != nil {
		return err
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	account.SetPasswordHash(hash)
	account.ClearResetToken()

	return s.store.Save(db, account)
}
