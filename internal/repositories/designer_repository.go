package repositories

import (
	"errors"
	"time"

	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDesignerNotFound = errors.New("designer not found")

type DesignerRepository interface {
	Create(db *gorm.DB, designer *models.Designer) error
	FindByID(db *gorm.DB, id string) (*models.Designer, error)
	FindByEmail(db *gorm.DB, email string) (*models.Designer, error)
	FindByResetDigest(db *gorm.DB, digest string, now time.Time) (*models.Designer, error)
	FindAll(db *gorm.DB) ([]models.Designer, error)
	Update(db *gorm.DB, designer *models.Designer) error
}

type DesignerRepositoryImpl struct{}

func NewDesignerRepository() DesignerRepository {
	return &DesignerRepositoryImpl{}
}

func (r *DesignerRepositoryImpl) Create(db *gorm.DB, designer *models.Designer) error {
	return db.Create(designer).Error
}

func (r *DesignerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Designer, error) {
	var designer models.Designer
	err := db.First(&designer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignerNotFound
		}
		return nil, err
	}
	return &designer, nil
}

func (r *DesignerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Designer, error) {
	var designer models.Designer
	err := db.First(&designer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignerNotFound
		}
		return nil, err
	}
	return &designer, nil
}

func (r *DesignerRepositoryImpl) FindByResetDigest(db *gorm.DB, digest string, now time.Time) (*models.Designer, error) {
	var designer models.Designer
	err := db.Where("reset_token_hash = ? AND reset_token_exp > ?", digest, now).
		First(&designer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignerNotFound
		}
		return nil, err
	}
	return &designer, nil
}

func (r *DesignerRepositoryImpl) FindAll(db *gorm.DB) ([]models.Designer, error) {
	var designers []models.Designer
	err := db.Order("created_at DESC").Find(&designers).Error
	return designers, err
}

func (r *DesignerRepositoryImpl) Update(db *gorm.DB, designer *models.Designer) error {
	return db.Save(designer).Error
}
