package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusPending is the status every complaint starts in. Status is a
// free-form label beyond that; the API does not enforce an enumeration.
const (
	StatusPending  = "PENDING"
	StatusResolved = "RESOLVED"
)

type Complaint struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Status      string    `gorm:"type:varchar(50);not null;index" json:"status"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Foreign Key Relationship (owner is never cascaded away by a complaint delete)
	User User `gorm:"foreignKey:UserID" json:"-"`
}
