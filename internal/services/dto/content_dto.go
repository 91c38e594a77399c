package dto

import "time"

// CreateContentRequest is shared by job posts and portfolio posts;
// attachment files arrive as multipart uploads alongside it.
type CreateContentRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Type        string `form:"type" json:"type" validate:"required"`
	CreatedBy   string `form:"createdBy" json:"createdBy" validate:"required"`
}

// UpdateContentRequest carries the partial text-field merge plus the
// keep-list of stored attachment filenames. ExistingImages is a JSON
// array encoded as a form value.
type UpdateContentRequest struct {
	Title          *string `form:"title" json:"title"`
	Description    *string `form:"description" json:"description"`
	Type           *string `form:"type" json:"type"`
	ExistingImages *string `form:"existingImages" json:"existingImages"`
}

// OwnerResponse is the name/email projection of a post's author.
type OwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContentResponse is the wire form of a job post or portfolio post.
type ContentResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          string         `json:"type"`
	ReferencePics []string       `json:"referencePics"`
	CreatedBy     *OwnerResponse `json:"createdBy,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
