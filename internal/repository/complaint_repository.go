package repository

import (
	"errors"

	"github.com/citifix/citifix-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryCount is one group of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ComplaintFilter holds the optional equality filters of the admin listing.
// Empty strings mean "no filter".
type ComplaintFilter struct {
	Status   string
	Category string
}

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) CreateComplaint(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// GetComplaintByID retrieves a complaint with its owner preloaded.
func (r *ComplaintRepository) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.Preload("User").First(&complaint, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &complaint, nil
}

// GetAllComplaints returns every complaint, newest first.
func (r *ComplaintRepository) GetAllComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// GetComplaintsByUserID returns the complaints owned by a user, newest first.
func (r *ComplaintRepository) GetComplaintsByUserID(userID uuid.UUID) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// UpdateComplaintFields applies a partial update. Only the columns present in
// updates change; everything else keeps its stored value.
func (r *ComplaintRepository) UpdateComplaintFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteComplaint permanently removes a complaint. No soft delete.
func (r *ComplaintRepository) DeleteComplaint(id uint) error {
	return r.db.Delete(&models.Complaint{}, id).Error
}

// ListComplaints returns one page of complaints matching the filter,
// newest first.
func (r *ComplaintRepository) ListComplaints(filter ComplaintFilter, offset, limit int) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.filtered(filter).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&complaints).Error
	return complaints, err
}

// CountComplaints counts the complaints matching the filter.
func (r *ComplaintRepository) CountComplaints(filter ComplaintFilter) (int64, error) {
	var count int64
	err := r.filtered(filter).Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

func (r *ComplaintRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// GroupByCategory returns complaint counts grouped by category label.
func (r *ComplaintRepository) GroupByCategory() ([]CategoryCount, error) {
	var groups []CategoryCount
	err := r.db.Model(&models.Complaint{}).
		Select("category, COUNT(id) AS count").
		Group("category").
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *ComplaintRepository) filtered(filter ComplaintFilter) *gorm.DB {
	query := r.db
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	return query
}
