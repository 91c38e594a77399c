package helpers

import (
	"fmt"
	"testing"
	"time"

	"visionvault_backend/internal/auth"
	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

// UniqueEmail returns an email address no other fixture in the run uses.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateDesigner inserts a designer with a properly hashed password.
func CreateDesigner(t *testing.T, db *gorm.DB, name, email, password string) *models.Designer {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	designer := &models.Designer{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        "+77000000000",
		Role:         models.RoleDesigner,
	}
	if err := db.Create(designer).Error; err != nil {
		t.Fatalf("failed to create designer %s: %v", email, err)
	}

	return designer
}

// CreateConsumer inserts a consumer with a properly hashed password.
func CreateConsumer(t *testing.T, db *gorm.DB, name, email, password string) *models.Consumer {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	consumer := &models.Consumer{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        "+77000000001",
		Role:         models.RoleConsumer,
	}
	if err := db.Create(consumer).Error; err != nil {
		t.Fatalf("failed to create consumer %s: %v", email, err)
	}

	return consumer
}
