package impact

import (
	"time"

	"gorm.io/datatypes"
)

// Impact is a story documenting the outcome of an event or goal, with
// Cloudinary-hosted images.
type Impact struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	EventID     *uint          `gorm:"index" json:"eventId,omitempty"`
	GoalID      *uint          `gorm:"index" json:"goalId,omitempty"`
	Title       string         `gorm:"size:150" json:"title"`
	Description string         `gorm:"size:2000;not null" json:"description"`
	Images      datatypes.JSON `json:"images,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Impact) TableName() string {
	return "impacts"
}

type CreateImpactInput struct {
	EventID     *uint  `form:"eventId"`
	GoalID      *uint  `form:"goalId"`
	Title       string `form:"title"`
	Description string `form:"description" binding:"required"`
}

type UpdateImpactInput struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}
