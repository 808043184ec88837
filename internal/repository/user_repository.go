package repository

import (
	"errors"
	"time"

	"github.com/citifix/citifix-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardEntry is a user annotated with its complaint count.
type LeaderboardEntry struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ComplaintCount int64     `json:"complaintCount"`
}

// UserWithCount is the admin listing projection: user fields (no password)
// plus the complaint count.
type UserWithCount struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           models.Role `json:"role"`
	CreatedAt      time.Time   `json:"createdAt"`
	ComplaintCount int64       `json:"complaintCount"`
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// GetAllUsersWithCounts returns every user with its complaint count,
// newest-created first. Password hash is never selected.
func (r *UserRepository) GetAllUsersWithCounts() ([]UserWithCount, error) {
	var users []UserWithCount
	err := r.db.Model(&models.User{}).
		Select("users.id, users.name, users.email, users.role, users.created_at, COUNT(complaints.id) AS complaint_count").
		Joins("LEFT JOIN complaints ON complaints.user_id = users.id").
		Group("users.id").
		Order("users.created_at DESC").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetLeaderboard returns every user (zero-count users included) ordered by
// complaint count descending. Ties keep whatever order the store returns.
func (r *UserRepository) GetLeaderboard() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.Model(&models.User{}).
		Select("users.id, users.name, users.email, COUNT(complaints.id) AS complaint_count").
		Joins("LEFT JOIN complaints ON complaints.user_id = users.id").
		Group("users.id").
		Order("complaint_count DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
