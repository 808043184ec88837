package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/citifix/citifix-backend/internal/repository"
	"github.com/citifix/citifix-backend/internal/service"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.adminService.GetAnalytics()
	if err != nil {
		logger.Log.Error("Failed to compute analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GET /api/admin/complaints?status=&category=&page=&limit=
func (h *AdminHandler) ListComplaints(c *gin.Context) {
	filter := repository.ComplaintFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	complaints, pagination, err := h.adminService.ListComplaints(filter, page, limit)
	if err != nil {
		logger.Log.Error("Failed to list complaints for admin",
			zap.String("status", filter.Status),
			zap.String("category", filter.Category),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints": complaintListJSON(complaints),
		"pagination": pagination,
	})
}

// PATCH /api/admin/complaints/:id/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	// An unreadable body counts as a missing status
	var req UpdateStatusRequest
	_ = c.ShouldBindJSON(&req)

	complaint, err := h.adminService.SetStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStatusRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		case errors.Is(err, service.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		default:
			logger.Log.Error("Failed to update complaint status",
				zap.Uint64("complaint_id", id),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, complaintJSON(complaint))
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	logger.Log.Info("Admin fetching all users",
		zap.String("admin_email", c.GetString("user_email")),
	)

	users, err := h.adminService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
