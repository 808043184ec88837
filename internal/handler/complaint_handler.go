package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/citifix/citifix-backend/internal/service"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

// CreateComplaintRequest deliberately avoids binding:required so the handler
// can answer missing fields with the contract's exact message. Coordinates
// are pointers: latitude 0 is valid, absent latitude is not.
type CreateComplaintRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// UpdateComplaintRequest is a partial patch; absent fields stay nil and are
// never written to the store.
type UpdateComplaintRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// POST /api/complaints
func (h *ComplaintHandler) Create(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	complaint, err := h.complaintService.Create(claims.UserID, service.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		logger.Log.Error("Failed to create complaint",
			zap.String("user_id", claims.UserID.String()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, complaintJSON(complaint))
}

// GET /api/complaints
func (h *ComplaintHandler) List(c *gin.Context) {
	complaints, err := h.complaintService.ListAll()
	if err != nil {
		logger.Log.Error("Failed to list complaints", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, complaintListJSON(complaints))
}

// GET /api/complaints/:id
func (h *ComplaintHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	complaint, err := h.complaintService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		logger.Log.Error("Failed to fetch complaint",
			zap.Uint64("complaint_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, complaintJSON(complaint))
}

// PUT /api/complaints/:id
func (h *ComplaintHandler) Update(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	complaint, err := h.complaintService.Update(uint(id), claims.UserID, claims.Role, service.ComplaintPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this complaint"})
		default:
			logger.Log.Error("Failed to update complaint",
				zap.Uint64("complaint_id", id),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, complaintJSON(complaint))
}

// DELETE /api/complaints/:id
func (h *ComplaintHandler) Delete(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	if err := h.complaintService.Delete(uint(id), claims.UserID, claims.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this complaint"})
		default:
			logger.Log.Error("Failed to delete complaint",
				zap.Uint64("complaint_id", id),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}

// GET /api/complaints/user/my-complaints
func (h *ComplaintHandler) MyComplaints(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	complaints, err := h.complaintService.ListMine(claims.UserID)
	if err != nil {
		logger.Log.Error("Failed to list user complaints",
			zap.String("user_id", claims.UserID.String()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, complaintListJSON(complaints))
}
