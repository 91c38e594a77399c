package repositories

import (
	"time"

	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

// CredentialStore is the account-lookup view the credential service
// works against. Both designer and consumer repositories provide one,
// so login and the password-reset flow are written once.
type CredentialStore interface {
	FindByEmail(db *gorm.DB, email string) (models.Credentialed, error)
	FindByResetDigest(db *gorm.DB, digest string, now time.Time) (models.Credentialed, error)
	Save(db *gorm.DB, account models.Credentialed) error
	NotFoundErr() error
}

type designerCredentialStore struct {
	repo DesignerRepository
}

func NewDesignerCredentialStore(repo DesignerRepository) CredentialStore {
	return &designerCredentialStore{repo: repo}
}

func (s *designerCredentialStore) FindByEmail(db *gorm.DB, email string) (models.Credentialed, error) {
	return s.repo.FindByEmail(db, email)
}

func (s *designerCredentialStore) FindByResetDigest(db *gorm.DB, digest string, now time.Time) (models.Credentialed, error) {
	return s.repo.FindByResetDigest(db, digest, now)
}

func (s *designerCredentialStore) Save(db *gorm.DB, account models.Credentialed) error {
	designer, ok := account.(*models.Designer)
	if !ok {
		return ErrDesignerNotFound
	}
	return s.repo.Update(db, designer)
}

func (s *designerCredentialStore) NotFoundErr() error { return ErrDesignerNotFound }

type consumerCredentialStore struct {
	repo ConsumerRepository
}

func NewConsumerCredentialStore(repo ConsumerRepository) CredentialStore {
	return &consumerCredentialStore{repo: repo}
}

func (s *consumerCredentialStore) FindByEmail(db *gorm.DB, email string) (models.Credentialed, error) {
	return s.repo.FindByEmail(db, email)
}

func (s *consumerCredentialStore) FindByResetDigest(db *gorm.DB, digest string, now time.Time) (models.Credentialed, error) {
	return s.repo.FindByResetDigest(db, digest, now)
}

func (s *consumerCredentialStore) Save(db *gorm.DB, account models.Credentialed) error {
	consumer, ok := account.(*models.Consumer)
	if !ok {
		return ErrConsumerNotFound
	}
	return s.repo.Update(db, consumer)
}

func (s *consumerCredentialStore) NotFoundErr() error { return ErrConsumerNotFound }
