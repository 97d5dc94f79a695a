package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
)

type Guest struct {
	ID            int       `gorm:"primary_key" json:"id"`
	BusinessId    string    `gorm:"index;not null" json:"business_id"`
	Name          string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email         string    `gorm:"size:255" json:"email"`
	Phone         string    `gorm:"size:20" json:"phone"`
	Nationality   string    `gorm:"size:100" json:"nationality"`
	IdDocument    string    `gorm:"size:100" json:"id_document"`
	Notes         string    `gorm:"type:text" json:"notes"`
	LoyaltyPoints int       `gorm:"default:0" json:"loyalty_points"`
	IsActive      *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewGuest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	IdDocument  string `json:"id_document"`
	Notes       string `json:"notes"`
}

func (g Guest) GetId() int {
	return g.ID
}

func (g Guest) GetBusinessId() string {
	return g.BusinessId
}

// CreateGuest normalizes the contact number and enforces per-tenant
// uniqueness of email and phone before inserting.
func CreateGuest(ctx context.Context, input *NewGuest) (*Guest, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	phone := input.Phone
	if phone != "" {
		normalized, err := utils.NormalizePhoneNumber(phone, "")
		if err != nil {
			return nil, err
		}
		phone = normalized
	}

	guest := Guest{
		BusinessId:  businessId,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       phone,
		Nationality: input.Nationality,
		IdDocument:  input.IdDocument,
		Notes:       input.Notes,
		IsActive:    utils.NewTrue(),
	}
	if err := guest.Validate(ctx, businessId, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// validate uniqueness of contact fields before any store call
func (g *Guest) Validate(ctx context.Context, businessId string, id int) error {
	if g.Email != "" {
		if err := utils.ValidateUnique[Guest](ctx, businessId, "email", g.Email, id); err != nil {
			return err
		}
	}
	if g.Phone != "" {
		if err := utils.ValidateUnique[Guest](ctx, businessId, "phone", g.Phone, id); err != nil {
			return err
		}
	}
	return nil
}
