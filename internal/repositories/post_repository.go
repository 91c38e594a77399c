package repositories

import (
	"errors"

	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	FindAll(db *gorm.DB) ([]models.Post, error)
	FindByDesigner(db *gorm.DB, designerID string) ([]models.Post, error)
	Update(db *gorm.DB, post *models.Post) error
	Delete(db *gorm.DB, id string) error
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

func (r *PostRepositoryImpl) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := db.Preload("CreatedBy").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindAll(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	err := db.Preload("CreatedBy").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByDesigner(db *gorm.DB, designerID string) ([]models.Post, error) {
	var posts []models.Post
	err := db.Preload("CreatedBy").Where("created_by_id = ?", designerID).
		Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) Update(db *gorm.DB, post *models.Post) error {
	return db.Save(post).Error
}

func (r *PostRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
