package models

import (
	"time"
)

// HousekeepingRequest lifecycle: created pending (manually or by the
// checkout trigger), then in_progress on start, then completed or
// cancelled. A pending request past its due_by is flipped to overdue by
// the periodic sweep.
type HousekeepingRequest struct {
	ID           int                  `gorm:"primary_key" json:"id"`
	BusinessId   string               `gorm:"index;not null" json:"business_id"`
	PropertyId   int                  `gorm:"index;not null" json:"property_id" binding:"required"`
	RoomId       int                  `gorm:"index;not null" json:"room_id" binding:"required"`
	Status       HousekeepingStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	Priority     HousekeepingPriority `gorm:"size:10;not null;default:'normal'" json:"priority"`
	AssignedTo   *int                 `gorm:"index" json:"assigned_to"`
	DueBy        time.Time            `gorm:"index" json:"due_by"`
	RequestedAt  time.Time            `json:"requested_at"`
	AutoAssigned bool                 `gorm:"default:false" json:"auto_assigned"`
	Description  string               `gorm:"type:text" json:"description"`
	CreatedAt    time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h HousekeepingRequest) GetId() int {
	return h.ID
}

func (h HousekeepingRequest) GetBusinessId() string {
	return h.BusinessId
}

// IsOverdue reports whether the sweep should flip the request.
// Only pending requests go overdue; terminal and in-flight states are
// left untouched no matter how old they are.
func (h HousekeepingRequest) IsOverdue(now time.Time) bool {
	return h.Status == HousekeepingStatusPending && h.DueBy.Before(now)
}
