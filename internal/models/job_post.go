package models

import "gorm.io/datatypes"

// MaxReferencePics caps the number of attachments on a job post or
// portfolio post.
const MaxReferencePics = 8

// JobPost is a work request published by a consumer.
type JobPost struct {
	BaseModel
	Title         string                      `gorm:"not null" json:"title"`
	Description   string                      `gorm:"not null" json:"description"`
	Type          string                      `gorm:"not null" json:"type"`
	ReferencePics datatypes.JSONSlice[string] `json:"referencePics"`
	CreatedByID   string                      `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedBy     *Consumer                   `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (JobPost) TableName() string { return "job_posts" }
