package models

import (
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"gorm.io/gorm"
)

type Staff struct {
	ID         int             `gorm:"primary_key" json:"id"`
	BusinessId string          `gorm:"index;not null" json:"business_id"`
	PropertyId int             `gorm:"index;not null" json:"property_id" binding:"required"`
	Name       string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Email      string          `gorm:"size:255" json:"email"`
	Phone      string          `gorm:"size:20" json:"phone"`
	Department StaffDepartment `gorm:"size:30;not null" json:"department" binding:"required"`
	Role       string          `gorm:"size:50" json:"role"`
	Password   string          `gorm:"size:100" json:"-"`
	IsActive   *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s Staff) GetId() int {
	return s.ID
}

func (s Staff) GetBusinessId() string {
	return s.BusinessId
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	// bcrypt hashes are 60 bytes; shorter means plaintext came in
	if s.Password != "" && len(s.Password) < 60 {
		hashed, err := utils.HashPassword(s.Password)
		if err != nil {
			return err
		}
		s.Password = string(hashed)
	}
	return nil
}
