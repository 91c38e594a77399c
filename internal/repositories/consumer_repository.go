package repositories

import (
	"errors"
	"time"

	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrConsumerNotFound = errors.New("consumer not found")

type ConsumerRepository interface {
	Create(db *gorm.DB, consumer *models.Consumer) error
	FindByID(db *gorm.DB, id string) (*models.Consumer, error)
	FindByEmail(db *gorm.DB, email string) (*models.Consumer, error)
	FindByResetDigest(db *gorm.DB, digest string, now time.Time) (*models.Consumer, error)
	Update(db *gorm.DB, consumer *models.Consumer) error
}

type ConsumerRepositoryImpl struct{}

func NewConsumerRepository() ConsumerRepository {
	return &ConsumerRepositoryImpl{}
}

func (r *ConsumerRepositoryImpl) Create(db *gorm.DB, consumer *models.Consumer) error {
	return db.Create(consumer).Error
}

func (r *ConsumerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Consumer, error) {
	var consumer models.Consumer
	err := db.First(&consumer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsumerNotFound
		}
		return nil, err
	}
	return &consumer, nil
}

func (r *ConsumerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Consumer, error) {
	var consumer models.Consumer
	err := db.First(&consumer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsumerNotFound
		}
		return nil, err
	}
	return &consumer, nil
}

func (r *ConsumerRepositoryImpl) FindByResetDigest(db *gorm.DB, digest string, now time.Time) (*models.Consumer, error) {
	var consumer models.Consumer
	err := db.Where("reset_token_hash = ? AND reset_token_exp > ?", digest, now).
		First(&consumer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsumerNotFound
		}
		return nil, err
	}
	return &consumer, nil
}

func (r *ConsumerRepositoryImpl) Update(db *gorm.DB, consumer *models.Consumer) error {
	return db.Save(consumer).Error
}
