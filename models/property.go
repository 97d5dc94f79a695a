package models

import (
	"time"
)

type Property struct {
	ID         int       `gorm:"primary_key" json:"id"`
	BusinessId string    `gorm:"index;not null" json:"business_id"`
	Name       string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Address    string    `gorm:"type:text" json:"address"`
	City       string    `gorm:"size:100" json:"city"`
	Country    string    `gorm:"size:100" json:"country"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Email      string    `gorm:"size:255" json:"email"`
	Timezone   string    `gorm:"size:50" json:"timezone"`
	StarRating int       `gorm:"default:0" json:"star_rating"`
	IsActive   *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProperty struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Timezone   string `json:"timezone"`
	StarRating int    `json:"star_rating"`
}

func (p Property) GetId() int {
	return p.ID
}

func (p Property) GetBusinessId() string {
	return p.BusinessId
}
