package dto

// RegisterDesignerRequest is bound from the multipart register form.
// The profile image file travels separately.
type RegisterDesignerRequest struct {
	Name       string `form:"name" json:"name" validate:"required"`
	Email      string `form:"email" json:"email" validate:"required,email"`
	Password   string `form:"password" json:"password" validate:"required,min=6"`
	Phone      string `form:"phone" json:"phone" validate:"required"`
	Role       string `form:"role" json:"role" validate:"required"`
	Experience string `form:"experience" json:"experience"`
	Portfolio  string `form:"portfolio" json:"portfolio"`
}

type RegisterConsumerRequest struct {
	Name     string `form:"name" json:"name" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
	Phone    string `form:"phone" json:"phone" validate:"required"`
	Role     string `form:"role" json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// UpdateDesignerRequest uses pointer fields so an absent field keeps
// the stored value while an explicitly empty one clears it.
type UpdateDesignerRequest struct {
	Name       *string `form:"name" json:"name"`
	Email      *string `form:"email" json:"email"`
	Phone      *string `form:"phone" json:"phone"`
	Experience *string `form:"experience" json:"experience"`
	Portfolio  *string `form:"portfolio" json:"portfolio"`
}

type UpdateConsumerRequest struct {
	Name  *string `form:"name" json:"name"`
	Email *string `form:"email" json:"email"`
	Phone *string `form:"phone" json:"phone"`
}

type ForgotPasswordRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `form:"password" json:"password" validate:"required,min=6"`
}

// AccountResponse is the public projection returned by register.
type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// LoginResponse adds the session token to the public projection.
type LoginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ResetTokenResponse is returned by the verify-token endpoint.
type ResetTokenResponse struct {
	Email string `json:"email"`
}
