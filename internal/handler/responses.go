package handler

import (
	"github.com/citifix/citifix-backend/internal/models"
	"github.com/citifix/citifix-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// complaintJSON shapes a complaint for the wire: full complaint fields plus
// the owner summary (id, name, email only — never the password hash).
func complaintJSON(complaint *models.Complaint) gin.H {
	return gin.H{
		"id":          complaint.ID,
		"title":       complaint.Title,
		"description": complaint.Description,
		"category":    complaint.Category,
		"status":      complaint.Status,
		"latitude":    complaint.Latitude,
		"longitude":   complaint.Longitude,
		"userId":      complaint.UserID,
		"createdAt":   complaint.CreatedAt,
		"updatedAt":   complaint.UpdatedAt,
		"user": gin.H{
			"id":    complaint.User.ID,
			"name":  complaint.User.Name,
			"email": complaint.User.Email,
		},
	}
}

func complaintListJSON(complaints []models.Complaint) []gin.H {
	result := make([]gin.H, 0, len(complaints))
	for i := range complaints {
		result = append(result, complaintJSON(&complaints[i]))
	}
	return result
}

// callerClaims pulls the authenticated caller out of the context
// (set by AuthMiddleware).
func callerClaims(c *gin.Context) (*utils.Claims, bool) {
	claims, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	userClaims, ok := claims.(*utils.Claims)
	return userClaims, ok
}
