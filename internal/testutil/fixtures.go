package testutil

import (
	"time"

	"github.com/citifix/citifix-backend/internal/models"
	"github.com/citifix/citifix-backend/internal/utils"
	"github.com/google/uuid"
)

// CreateTestUser creates a test user with a hashed password
func CreateTestUser(name, email, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// CreateTestComplaint creates a PENDING test complaint owned by userID
func CreateTestComplaint(userID uuid.UUID, title, category string) *models.Complaint {
	return &models.Complaint{
		Title:       title,
		Description: "description of " + title,
		Category:    category,
		Status:      models.StatusPending,
		Latitude:    28.6139,
		Longitude:   77.2090,
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// DefaultTestUser returns a default citizen user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("Test User", "test@example.com", "Test123456", models.RoleCitizen)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("Admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}
