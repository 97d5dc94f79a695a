package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
	Cross-entity state propagation. These hooks run inside the mutating
	statement's transaction, so each rule commits or rolls back with the
	write that fired it.
*/

/* Billing -> Revenue mirror */

func (b *Billing) AfterCreate(tx *gorm.DB) (err error) {
	return upsertRevenueMirror(tx, b.ID)
}

func (b *Billing) AfterUpdate(tx *gorm.DB) (err error) {
	return upsertRevenueMirror(tx, b.ID)
}

// upsertRevenueMirror re-reads the billing row (the update has already run
// inside tx) and upserts its revenue mirror keyed by billing_id. Billing is
// the source of truth; the mirror is one-way.
func upsertRevenueMirror(tx *gorm.DB, billingId int) error {
	var billing Billing
	if err := tx.Model(&Billing{}).Where("id = ?", billingId).First(&billing).Error; err != nil {
		return err
	}

	revenue := Revenue{
		BusinessId:  billing.BusinessId,
		BillingId:   billing.ID,
		PropertyId:  billing.PropertyId,
		Amount:      billing.Amount,
		Currency:    billing.Currency,
		Category:    billing.Category,
		Description: billing.Description,
		Status:      billing.Status,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "billing_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"business_id", "property_id", "amount", "currency", "category", "description", "status", "updated_at",
		}),
	}).Create(&revenue).Error
}

/* Reservation status -> room availability */

func (r *Reservation) AfterCreate(tx *gorm.DB) (err error) {
	if !r.Status.HoldsRooms() {
		return nil
	}
	return setRoomsStatus(tx, r.RoomIds(), RoomStatusReserved)
}

// BeforeUpdate sees the fetched row (old values) while the new values sit
// in the statement destination. Only a status change touches rooms:
// confirmed/booked holds them, cancelled from a non-cancelled prior status
// releases them. Every other status leaves room state alone.
func (r *Reservation) BeforeUpdate(tx *gorm.DB) (err error) {
	if !tx.Statement.Changed("Status") {
		return nil
	}
	newStatus, ok := reservationStatusFromDest(tx)
	if !ok {
		return nil
	}

	var roomIds []int
	if err := tx.Model(&ReservationRoom{}).
		Where("reservation_id = ?", r.ID).
		Pluck("room_id", &roomIds).Error; err != nil {
		return err
	}
	if len(roomIds) == 0 {
		return nil
	}

	if newStatus.HoldsRooms() {
		return setRoomsStatus(tx, roomIds, RoomStatusReserved)
	}
	if newStatus == ReservationStatusCancelled && r.Status != ReservationStatusCancelled {
		return setRoomsStatus(tx, roomIds, RoomStatusAvailable)
	}
	return nil
}

func reservationStatusFromDest(tx *gorm.DB) (ReservationStatus, bool) {
	switch dest := tx.Statement.Dest.(type) {
	case map[string]interface{}:
		for _, key := range []string{"status", "Status"} {
			if raw, ok := dest[key]; ok {
				switch v := raw.(type) {
				case ReservationStatus:
					return v, true
				case string:
					return ReservationStatus(v), true
				}
			}
		}
	case *Reservation:
		return dest.Status, true
	case Reservation:
		return dest.Status, true
	}
	return "", false
}

// direct UPDATE, skipping room hooks: a reservation-driven status change
// must not cascade into the checkout trigger
func setRoomsStatus(tx *gorm.DB, roomIds []int, status RoomStatus) error {
	if len(roomIds) == 0 {
		return nil
	}
	return tx.Model(&Room{}).
		Where("id IN ?", roomIds).
		UpdateColumn("status", status).Error
}

/* Room checkout -> housekeeping auto-assignment */

// BeforeUpdate fires the round-robin assignment when the status moves into
// checkout from any other status. The request insert rides the same
// transaction as the room update.
func (r *Room) BeforeUpdate(tx *gorm.DB) (err error) {
	if !tx.Statement.Changed("Status") {
		return nil
	}
	newStatus, ok := roomStatusFromDest(tx)
	if !ok {
		return nil
	}
	if newStatus != RoomStatusCheckout || r.Status == RoomStatusCheckout {
		return nil
	}
	return autoAssignHousekeeping(tx, r)
}

func roomStatusFromDest(tx *gorm.DB) (RoomStatus, bool) {
	switch dest := tx.Statement.Dest.(type) {
	case map[string]interface{}:
		for _, key := range []string{"status", "Status"} {
			if raw, ok := dest[key]; ok {
				switch v := raw.(type) {
				case RoomStatus:
					return v, true
				case string:
					return RoomStatus(v), true
				}
			}
		}
	case *Room:
		return dest.Status, true
	case Room:
		return dest.Status, true
	}
	return "", false
}
