package service

import (
	"errors"

	"github.com/citifix/citifix-backend/internal/models"
	"github.com/citifix/citifix-backend/internal/repository"
	"github.com/citifix/citifix-backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrStatusRequired = errors.New("status is required")

const defaultPageSize = 10

// Analytics is a point-in-time snapshot; nothing is cached between calls.
// Statuses other than PENDING/RESOLVED exist, so the two counts need not add
// up to the total.
type Analytics struct {
	TotalComplaints      int64                      `json:"totalComplaints"`
	TotalUsers           int64                      `json:"totalUsers"`
	PendingComplaints    int64                      `json:"pendingComplaints"`
	ResolvedComplaints   int64                      `json:"resolvedComplaints"`
	ComplaintsByCategory []repository.CategoryCount `json:"complaintsByCategory"`
}

// Pagination describes one page of the filtered admin listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type AdminService struct {
	complaintRepo *repository.ComplaintRepository
	userRepo      *repository.UserRepository
}

func NewAdminService(complaintRepo *repository.ComplaintRepository, userRepo *repository.UserRepository) *AdminService {
	return &AdminService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
	}
}

func (s *AdminService) GetAnalytics() (*Analytics, error) {
	totalComplaints, err := s.complaintRepo.CountComplaints(repository.ComplaintFilter{})
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	pending, err := s.complaintRepo.CountByStatus(models.StatusPending)
	if err != nil {
		return nil, err
	}

	resolved, err := s.complaintRepo.CountByStatus(models.StatusResolved)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.complaintRepo.GroupByCategory()
	if err != nil {
		return nil, err
	}
	if byCategory == nil {
		byCategory = []repository.CategoryCount{}
	}

	return &Analytics{
		TotalComplaints:      totalComplaints,
		TotalUsers:           totalUsers,
		PendingComplaints:    pending,
		ResolvedComplaints:   resolved,
		ComplaintsByCategory: byCategory,
	}, nil
}

// ListComplaints applies the optional equality filters and paginates with a
// 1-based page number.
func (s *AdminService) ListComplaints(filter repository.ComplaintFilter, page, limit int) ([]models.Complaint, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	total, err := s.complaintRepo.CountComplaints(filter)
	if err != nil {
		return nil, nil, err
	}

	complaints, err := s.complaintRepo.ListComplaints(filter, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return complaints, &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}

// SetStatus updates a complaint's status. The label is free-form; only
// presence is validated.
func (s *AdminService) SetStatus(id uint, status string) (*models.Complaint, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	complaint, err := s.complaintRepo.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}

	if err := s.complaintRepo.UpdateComplaintFields(id, map[string]interface{}{"status": status}); err != nil {
		logger.Log.Error("Failed to update complaint status",
			zap.Uint("complaint_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Complaint status updated",
		zap.Uint("complaint_id", id),
		zap.String("status", status),
	)

	return s.complaintRepo.GetComplaintByID(id)
}

// ListUsers returns every user with its complaint count, newest first.
func (s *AdminService) ListUsers() ([]repository.UserWithCount, error) {
	users, err := s.userRepo.GetAllUsersWithCounts()
	if err != nil {
		logger.Log.Error("Failed to fetch users", zap.Error(err))
		return nil, err
	}
	return users, nil
}
