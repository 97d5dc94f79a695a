package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/shopspring/decimal"
)

// Billing is the source of truth for all charges; the revenue mirror is
// derived from it one-way by the model hooks.
type Billing struct {
	ID            int             `gorm:"primary_key" json:"id"`
	BusinessId    string          `gorm:"index;not null" json:"business_id"`
	PropertyId    int             `gorm:"index;not null" json:"property_id" binding:"required"`
	ReservationId int             `gorm:"index" json:"reservation_id"`
	GuestId       int             `gorm:"index" json:"guest_id"`
	InvoiceNumber string          `gorm:"size:30;index" json:"invoice_number"`
	SequenceNo    int64           `gorm:"default:0" json:"sequence_no"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency      string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Category      BillingCategory `gorm:"size:20;not null;default:'room'" json:"category"`
	Description   string          `gorm:"type:text" json:"description"`
	Status        BillingStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBilling struct {
	PropertyId    int             `json:"property_id" binding:"required"`
	ReservationId int             `json:"reservation_id"`
	GuestId       int             `json:"guest_id"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency"`
	Category      BillingCategory `json:"category"`
	Description   string          `json:"description"`
	Status        BillingStatus   `json:"status"`
}

func (b Billing) GetId() int {
	return b.ID
}

func (b Billing) GetBusinessId() string {
	return b.BusinessId
}

// Revenue mirrors a billing row for the reporting read pattern.
// At most one revenue row exists per billing id.
type Revenue struct {
	ID          int             `gorm:"primary_key" json:"id"`
	BusinessId  string          `gorm:"index;not null" json:"business_id"`
	BillingId   int             `gorm:"uniqueIndex;not null" json:"billing_id"`
	PropertyId  int             `gorm:"index;not null" json:"property_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency    string          `gorm:"size:3;not null" json:"currency"`
	Category    BillingCategory `gorm:"size:20;not null" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Status      BillingStatus   `gorm:"size:20;not null" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r Revenue) GetId() int {
	return r.ID
}

func (r Revenue) GetBusinessId() string {
	return r.BusinessId
}

func (input *NewBilling) validate(ctx context.Context, businessId string) error {
	if err := utils.ValidateResourceId[Property](ctx, businessId, input.PropertyId); err != nil {
		return errors.New("property not found")
	}
	if input.ReservationId > 0 {
		if err := utils.ValidateResourceId[Reservation](ctx, businessId, input.ReservationId); err != nil {
			return errors.New("reservation not found")
		}
	}
	if input.GuestId > 0 {
		if err := utils.ValidateResourceId[Guest](ctx, businessId, input.GuestId); err != nil {
			return errors.New("guest not found")
		}
	}
	if input.Amount.IsNegative() {
		return errors.New("amount cannot be negative")
	}
	return nil
}

// CreateBilling assigns a per-tenant invoice number and inserts the billing
// row; the revenue mirror is upserted by the model hooks inside the same
// transaction.
func CreateBilling(ctx context.Context, input *NewBilling) (*Billing, error) {
	db := config.GetDB()

	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	if err := input.validate(ctx, businessId); err != nil {
		return nil, err
	}

	seqNo, err := utils.GetSequence[Billing](ctx, businessId)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	category := input.Category
	if category == "" {
		category = BillingCategoryRoom
	}
	status := input.Status
	if status == "" {
		status = BillingStatusPending
	}

	billing := Billing{
		BusinessId:    businessId,
		PropertyId:    input.PropertyId,
		ReservationId: input.ReservationId,
		GuestId:       input.GuestId,
		InvoiceNumber: fmt.Sprintf("INV-%06d", seqNo),
		SequenceNo:    seqNo,
		Amount:        input.Amount,
		Currency:      currency,
		Category:      category,
		Description:   input.Description,
		Status:        status,
	}
	if err := db.WithContext(ctx).Create(&billing).Error; err != nil {
		return nil, err
	}
	return &billing, nil
}
