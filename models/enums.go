package models

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusBooked     ReservationStatus = "booked"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
	ReservationStatusNoShow     ReservationStatus = "no_show"
)

// statuses that hold rooms for the reservation
func (s ReservationStatus) HoldsRooms() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusBooked
}

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusReserved    RoomStatus = "reserved"
	// transient status set by the front desk when guests leave; fires the
	// housekeeping auto-assignment
	RoomStatusCheckout RoomStatus = "checkout"
)

type HousekeepingStatus string

const (
	HousekeepingStatusPending    HousekeepingStatus = "pending"
	HousekeepingStatusInProgress HousekeepingStatus = "in_progress"
	HousekeepingStatusCompleted  HousekeepingStatus = "completed"
	HousekeepingStatusCancelled  HousekeepingStatus = "cancelled"
	HousekeepingStatusOverdue    HousekeepingStatus = "overdue"
)

type HousekeepingPriority string

const (
	HousekeepingPriorityLow    HousekeepingPriority = "low"
	HousekeepingPriorityNormal HousekeepingPriority = "normal"
	HousekeepingPriorityHigh   HousekeepingPriority = "high"
)

type BillingStatus string

const (
	BillingStatusDraft    BillingStatus = "draft"
	BillingStatusPending  BillingStatus = "pending"
	BillingStatusPaid     BillingStatus = "paid"
	BillingStatusRefunded BillingStatus = "refunded"
	BillingStatusVoid     BillingStatus = "void"
)

type BillingCategory string

const (
	BillingCategoryRoom    BillingCategory = "room"
	BillingCategoryFood    BillingCategory = "food"
	BillingCategoryService BillingCategory = "service"
	BillingCategoryDeposit BillingCategory = "deposit"
	BillingCategoryOther   BillingCategory = "other"
)

type StaffDepartment string

const (
	StaffDepartmentFrontDesk    StaffDepartment = "front_desk"
	StaffDepartmentHousekeeping StaffDepartment = "housekeeping"
	StaffDepartmentMaintenance  StaffDepartment = "maintenance"
	StaffDepartmentManagement   StaffDepartment = "management"
)
