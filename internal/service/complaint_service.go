package service

import (
	"errors"

	"github.com/citifix/citifix-backend/internal/models"
	"github.com/citifix/citifix-backend/internal/repository"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrMissingFields     = errors.New("all fields are required")
	ErrNotOwner          = errors.New("not authorized to modify this complaint")
)

// CreateComplaintInput carries the create payload. Latitude and longitude are
// pointers so that an absent coordinate is distinguishable from a zero one.
type CreateComplaintInput struct {
	Title       string
	Description string
	Category    string
	Latitude    *float64
	Longitude   *float64
}

// ComplaintPatch is a partial update: nil fields stay untouched. Presence is
// what matters, not truthiness, so a zero coordinate is a legitimate update.
type ComplaintPatch struct {
	Title       *string
	Description *string
	Category    *string
	Status      *string
	Latitude    *float64
	Longitude   *float64
}

type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
}

func NewComplaintService(complaintRepo *repository.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

// canMutate is the single ownership predicate shared by update and delete:
// the owner or an admin may mutate, nobody else.
func canMutate(callerID uuid.UUID, callerRole models.Role, complaint *models.Complaint) bool {
	return complaint.UserID == callerID || callerRole == models.RoleAdmin
}

// Create persists a new complaint owned by the caller. Every field must be
// present; status starts as PENDING.
func (s *ComplaintService) Create(callerID uuid.UUID, in CreateComplaintInput) (*models.Complaint, error) {
	if in.Title == "" || in.Description == "" || in.Category == "" || in.Latitude == nil || in.Longitude == nil {
		return nil, ErrMissingFields
	}

	complaint := &models.Complaint{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      models.StatusPending,
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		UserID:      callerID,
	}

	if err := s.complaintRepo.CreateComplaint(complaint); err != nil {
		logger.Log.Error("Failed to create complaint",
			zap.String("user_id", callerID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Complaint created",
		zap.Uint("complaint_id", complaint.ID),
		zap.String("user_id", callerID.String()),
		zap.String("category", complaint.Category),
	)

	// Re-fetch to embed the owner summary
	return s.complaintRepo.GetComplaintByID(complaint.ID)
}

// ListAll returns every complaint, newest first. No pagination.
func (s *ComplaintService) ListAll() ([]models.Complaint, error) {
	return s.complaintRepo.GetAllComplaints()
}

func (s *ComplaintService) GetByID(id uint) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}
	return complaint, nil
}

// ListMine returns the caller's complaints, newest first.
func (s *ComplaintService) ListMine(callerID uuid.UUID) ([]models.Complaint, error) {
	return s.complaintRepo.GetComplaintsByUserID(callerID)
}

// Update applies a partial patch under the ownership gate. Absent fields keep
// their stored values.
func (s *ComplaintService) Update(id uint, callerID uuid.UUID, callerRole models.Role, patch ComplaintPatch) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}

	if !canMutate(callerID, callerRole, complaint) {
		logger.Log.Warn("Complaint update forbidden",
			zap.Uint("complaint_id", id),
			zap.String("caller_id", callerID.String()),
			zap.String("owner_id", complaint.UserID.String()),
		)
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Latitude != nil {
		updates["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		updates["longitude"] = *patch.Longitude
	}

	if err := s.complaintRepo.UpdateComplaintFields(id, updates); err != nil {
		logger.Log.Error("Failed to update complaint",
			zap.Uint("complaint_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return s.complaintRepo.GetComplaintByID(id)
}

// Delete permanently removes a complaint under the same gate as Update.
func (s *ComplaintService) Delete(id uint, callerID uuid.UUID, callerRole models.Role) error {
	complaint, err := s.complaintRepo.GetComplaintByID(id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return ErrComplaintNotFound
	}

	if !canMutate(callerID, callerRole, complaint) {
		logger.Log.Warn("Complaint delete forbidden",
			zap.Uint("complaint_id", id),
			zap.String("caller_id", callerID.String()),
			zap.String("owner_id", complaint.UserID.String()),
		)
		return ErrNotOwner
	}

	if err := s.complaintRepo.DeleteComplaint(id); err != nil {
		logger.Log.Error("Failed to delete complaint",
			zap.Uint("complaint_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Complaint deleted",
		zap.Uint("complaint_id", id),
		zap.String("caller_id", callerID.String()),
	)

	return nil
}
