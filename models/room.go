package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType struct {
	ID           int             `gorm:"primary_key" json:"id"`
	BusinessId   string          `gorm:"index;not null" json:"business_id"`
	PropertyId   int             `gorm:"index;not null" json:"property_id" binding:"required"`
	Name         string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Description  string          `gorm:"type:text" json:"description"`
	BaseRate     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"base_rate"`
	MaxOccupancy int             `gorm:"default:2" json:"max_occupancy"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r RoomType) GetId() int {
	return r.ID
}

func (r RoomType) GetBusinessId() string {
	return r.BusinessId
}

type Room struct {
	ID         int        `gorm:"primary_key" json:"id"`
	BusinessId string     `gorm:"index;not null" json:"business_id"`
	PropertyId int        `gorm:"index;not null" json:"property_id" binding:"required"`
	RoomTypeId int        `gorm:"index" json:"room_type_id"`
	Number     string     `gorm:"size:20;not null" json:"number" binding:"required"`
	Floor      int        `gorm:"default:0" json:"floor"`
	Status     RoomStatus `gorm:"size:20;not null;default:'available'" json:"status"`
	Notes      string     `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewRoom struct {
	PropertyId int        `json:"property_id" binding:"required"`
	RoomTypeId int        `json:"room_type_id"`
	Number     string     `json:"number" binding:"required"`
	Floor      int        `json:"floor"`
	Status     RoomStatus `json:"status"`
	Notes      string     `json:"notes"`
}

func (r Room) GetId() int {
	return r.ID
}

func (r Room) GetBusinessId() string {
	return r.BusinessId
}
