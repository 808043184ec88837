package service

import (
	"testing"

	"github.com/citifix/citifix-backend/internal/models"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	complaint := &models.Complaint{ID: 1, UserID: owner}

	tests := []struct {
		name     string
		callerID uuid.UUID
		role     models.Role
		want     bool
	}{
		{"Owner citizen", owner, models.RoleCitizen, true},
		{"Owner admin", owner, models.RoleAdmin, true},
		{"Stranger citizen", stranger, models.RoleCitizen, false},
		{"Stranger admin", stranger, models.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canMutate(tt.callerID, tt.role, complaint))
		})
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	logger.Init(false)

	lat, lng := 28.6139, 77.2090
	complete := CreateComplaintInput{
		Title:       "Pothole",
		Description: "Deep pothole on the main road",
		Category:    "Roads",
		Latitude:    &lat,
		Longitude:   &lng,
	}

	tests := []struct {
		name   string
		mutate func(*CreateComplaintInput)
	}{
		{"Missing title", func(in *CreateComplaintInput) { in.Title = "" }},
		{"Missing description", func(in *CreateComplaintInput) { in.Description = "" }},
		{"Missing category", func(in *CreateComplaintInput) { in.Category = "" }},
		{"Missing latitude", func(in *CreateComplaintInput) { in.Latitude = nil }},
		{"Missing longitude", func(in *CreateComplaintInput) { in.Longitude = nil }},
	}

	// Validation fails before any repository access, so no store is needed
	s := NewComplaintService(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := complete
			tt.mutate(&in)

			_, err := s.Create(uuid.New(), in)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}
