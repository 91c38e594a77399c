package repositories

import (
	"errors"
	"time"

	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobPostNotFound = errors.New("job post not found")

type JobPostRepository interface {
	Create(db *gorm.DB, jobPost *models.JobPost) error
	FindByID(db *gorm.DB, id string) (*models.JobPost, error)
	FindAll(db *gorm.DB) ([]models.JobPost, error)
	FindByConsumer(db *gorm.DB, consumerID string) ([]models.JobPost, error)
	FindCreatedSince(db *gorm.DB, since time.Time) ([]models.JobPost, error)
	Update(db *gorm.DB, jobPost *models.JobPost) error
	Delete(db *gorm.DB, id string) error
}

type JobPostRepositoryImpl struct{}

func NewJobPostRepository() JobPostRepository {
	return &JobPostRepositoryImpl{}
}

func (r *JobPostRepositoryImpl) Create(db *gorm.DB, jobPost *models.JobPost) error {
	return db.Create(jobPost).Error
}

func (r *JobPostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobPost, error) {
	var jobPost models.JobPost
	err := db.Preload("CreatedBy").First(&jobPost, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &jobPost, nil
}

func (r *JobPostRepositoryImpl) FindAll(db *gorm.DB) ([]models.JobPost, error) {
	var jobPosts []models.JobPost
	err := db.Preload("CreatedBy").Order("created_at DESC").Find(&jobPosts).Error
	return jobPosts, err
}

func (r *JobPostRepositoryImpl) FindByConsumer(db *gorm.DB, consumerID string) ([]models.JobPost, error) {
	var jobPosts []models.JobPost
	err := db.Preload("CreatedBy").Where("created_by_id = ?", consumerID).
		Order("created_at DESC").Find(&jobPosts).Error
	return jobPosts, err
}

func (r *JobPostRepositoryImpl) FindCreatedSince(db *gorm.DB, since time.Time) ([]models.JobPost, error) {
	var jobPosts []models.JobPost
	err := db.Preload("CreatedBy").Where("created_at >= ?", since).
		Order("created_at DESC").Find(&jobPosts).Error
	return jobPosts, err
}

func (r *JobPostRepositoryImpl) Update(db *gorm.DB, jobPost *models.JobPost) error {
	return db.Save(jobPost).Error
}

func (r *JobPostRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}
