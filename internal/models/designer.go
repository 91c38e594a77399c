package models

import "time"

const RoleDesigner = "designer"

// Designer is a creative professional who publishes portfolio posts
// and browses job posts.
type Designer struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `gorm:"not null" json:"phone"`
	Role         string `gorm:"not null" json:"role"`
	Experience   string `json:"experience"`
	Portfolio    string `json:"portfolio"`
	Image        string `json:"image"`
	IsAdmin      bool   `gorm:"default:false" json:"isAdmin"`

	ResetTokenHash string     `gorm:"index" json:"-"`
	ResetTokenExp  *time.Time `json:"-"`
}

func (Designer) TableName() string { return "designers" }

func (d *Designer) GetID() string           { return d.ID }
func (d *Designer) GetName() string         { return d.Name }
func (d *Designer) GetEmail() string        { return d.Email }
func (d *Designer) GetImage() string        { return d.Image }
func (d *Designer) GetRole() string         { return RoleDesigner }
func (d *Designer) GetPasswordHash() string { return d.PasswordHash }

func (d *Designer) SetPasswordHash(hash string) { d.PasswordHash = hash }

func (d *Designer) SetResetToken(digest string, expiresAt time.Time) {
	d.ResetTokenHash = digest
	d.ResetTokenExp = &expiresAt
}

func (d *Designer) ClearResetToken() {
	d.ResetTokenHash = ""
	d.ResetTokenExp = nil
}
