package models

import "time"

const RoleConsumer = "consumer"

// Consumer is a client account that posts jobs for designers.
type Consumer struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `gorm:"not null" json:"phone"`
	Role         string `gorm:"not null" json:"role"`
	Image        string `json:"image"`

	ResetTokenHash string     `gorm:"index" json:"-"`
	ResetTokenExp  *time.Time `json:"-"`
}

func (Consumer) TableName() string { return "consumers" }

func (c *Consumer) GetID() string           { return c.ID }
func (c *Consumer) GetName() string         { return c.Name }
func (c *Consumer) GetEmail() string        { return c.Email }
func (c *Consumer) GetImage() string        { return c.Image }
func (c *Consumer) GetRole() string         { return RoleConsumer }
func (c *Consumer) GetPasswordHash() string { return c.PasswordHash }

func (c *Consumer) SetPasswordHash(hash string) { c.PasswordHash = hash }

func (c *Consumer) SetResetToken(digest string, expiresAt time.Time) {
	c.ResetTokenHash = digest
	c.ResetTokenExp = &expiresAt
}

func (c *Consumer) ClearResetToken() {
	c.ResetTokenHash = ""
	c.ResetTokenExp = nil
}
