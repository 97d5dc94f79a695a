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

type Reservation struct {
	ID            int                `gorm:"primary_key" json:"id"`
	BusinessId    string             `gorm:"index;not null" json:"business_id"`
	PropertyId    int                `gorm:"index;not null" json:"property_id" binding:"required"`
	GuestId       int                `gorm:"index;not null" json:"guest_id" binding:"required"`
	BookingNumber string             `gorm:"size:30;index" json:"booking_number"`
	SequenceNo    int64              `gorm:"default:0" json:"sequence_no"`
	Status        ReservationStatus  `gorm:"size:20;not null;default:'pending'" json:"status"`
	CheckInDate   time.Time          `gorm:"not null" json:"check_in_date" binding:"required"`
	CheckOutDate  time.Time          `gorm:"not null" json:"check_out_date" binding:"required"`
	Adults        int                `gorm:"default:1" json:"adults"`
	Children      int                `gorm:"default:0" json:"children"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	Notes         string             `gorm:"type:text" json:"notes"`
	Rooms         []*ReservationRoom `json:"rooms"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

// ReservationRoom links a reservation to one of its rooms.
type ReservationRoom struct {
	ID            int `gorm:"primary_key" json:"id"`
	ReservationId int `gorm:"index;not null" json:"reservation_id"`
	RoomId        int `gorm:"index;not null" json:"room_id" binding:"required"`
}

type NewReservation struct {
	PropertyId   int               `json:"property_id" binding:"required"`
	GuestId      int               `json:"guest_id" binding:"required"`
	Status       ReservationStatus `json:"status"`
	CheckInDate  time.Time         `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time         `json:"check_out_date" binding:"required"`
	Adults       int               `json:"adults"`
	Children     int               `json:"children"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	Notes        string            `json:"notes"`
	RoomIds      []int             `json:"room_ids"`
}

func (r Reservation) GetId() int {
	return r.ID
}

func (r Reservation) GetBusinessId() string {
	return r.BusinessId
}

// room ids linked to the reservation
func (r Reservation) RoomIds() []int {
	ids := make([]int, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		ids = append(ids, room.RoomId)
	}
	return ids
}

func (input *NewReservation) validate(ctx context.Context, businessId string) error {
	property, err := GetResource[Property](ctx, input.PropertyId)
	if err != nil {
		return errors.New("property not found")
	}
	if err := utils.ValidateResourceId[Guest](ctx, businessId, input.GuestId); err != nil {
		return errors.New("guest not found")
	}
	if len(input.RoomIds) > 0 {
		if err := utils.ValidateResourcesId[Room](ctx, businessId, input.RoomIds); err != nil {
			return errors.New("room not found")
		}
	}
	checkIn, err := utils.ConvertToDate(input.CheckInDate, property.Timezone)
	if err != nil {
		return err
	}
	checkOut, err := utils.ConvertToDate(input.CheckOutDate, property.Timezone)
	if err != nil {
		return err
	}
	if !checkOut.After(checkIn) {
		return errors.New("check-out date must be after check-in date")
	}
	return nil
}

// CreateReservation assigns a per-tenant booking number and inserts the
// reservation with its room links; the status-sync trigger fires inside
// the same transaction via the model hooks.
func CreateReservation(ctx context.Context, input *NewReservation) (*Reservation, error) {
	db := config.GetDB()

	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	if err := input.validate(ctx, businessId); err != nil {
		return nil, err
	}

	seqNo, err := utils.GetSequence[Reservation](ctx, businessId)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = ReservationStatusPending
	}

	rooms := make([]*ReservationRoom, 0, len(input.RoomIds))
	for _, roomId := range input.RoomIds {
		rooms = append(rooms, &ReservationRoom{RoomId: roomId})
	}

	reservation := Reservation{
		BusinessId:    businessId,
		PropertyId:    input.PropertyId,
		GuestId:       input.GuestId,
		BookingNumber: fmt.Sprintf("BK-%06d", seqNo),
		SequenceNo:    seqNo,
		Status:        status,
		CheckInDate:   input.CheckInDate,
		CheckOutDate:  input.CheckOutDate,
		Adults:        input.Adults,
		Children:      input.Children,
		TotalAmount:   input.TotalAmount,
		Notes:         input.Notes,
		Rooms:         rooms,
	}
	if err := db.WithContext(ctx).Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}
