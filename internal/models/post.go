package models

import "gorm.io/datatypes"

// Post is a portfolio piece published by a designer.
type Post struct {
	BaseModel
	Title         string                      `gorm:"not null" json:"title"`
	Description   string                      `gorm:"not null" json:"description"`
	Type          string                      `gorm:"not null" json:"type"`
	ReferencePics datatypes.JSONSlice[string] `json:"referencePics"`
	CreatedByID   string                      `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedBy     *Designer                   `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (Post) TableName() string { return "posts" }
