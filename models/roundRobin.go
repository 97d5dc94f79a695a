package models

import (
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"gorm.io/gorm"
)

const housekeepingDueIn = 3 * time.Hour

// StaffLoad pairs a staff id with its count of open housekeeping requests.
type StaffLoad struct {
	StaffId int
	Load    int
}

// PickLeastLoaded returns the staff id with the lowest load. Ties resolve
// to the earliest entry, so callers pass loads in store order (by id).
func PickLeastLoaded(loads []StaffLoad) (int, bool) {
	if len(loads) == 0 {
		return 0, false
	}
	best := loads[0]
	for _, load := range loads[1:] {
		if load.Load < best.Load {
			best = load
		}
	}
	return best.StaffId, true
}

// autoAssignHousekeeping creates a pending request for the checked-out room,
// assigned to the least-loaded active housekeeping staff of the property.
// No eligible staff is a silent no-op. Selection and insert are serialized
// per property through redis so concurrent checkouts cannot double-pick the
// same least-loaded staff member; if the lock cannot be obtained the
// assignment proceeds unlocked rather than failing the checkout.
func autoAssignHousekeeping(tx *gorm.DB, room *Room) error {
	ctx := tx.Statement.Context

	release, lockErr := utils.PropertyLock(ctx, room.PropertyId, "housekeepingAssign", "roundRobin.go", "autoAssignHousekeeping")
	if lockErr == nil {
		defer release()
	} else {
		config.LogError(config.GetLogger(), "roundRobin.go", "autoAssignHousekeeping",
			"proceeding without property lock", room.PropertyId, lockErr)
	}

	loads, err := housekeepingLoads(tx, room.BusinessId, room.PropertyId)
	if err != nil {
		return err
	}
	staffId, ok := PickLeastLoaded(loads)
	if !ok {
		return nil
	}

	now := time.Now().UTC()
	request := HousekeepingRequest{
		BusinessId:   room.BusinessId,
		PropertyId:   room.PropertyId,
		RoomId:       room.ID,
		Status:       HousekeepingStatusPending,
		Priority:     HousekeepingPriorityNormal,
		AssignedTo:   &staffId,
		DueBy:        now.Add(housekeepingDueIn),
		RequestedAt:  now,
		AutoAssigned: true,
		Description:  "Auto-assigned cleaning after checkout",
	}
	return tx.Create(&request).Error
}

// housekeepingLoads lists the property's active housekeeping staff in id
// order, each with its open (pending or in_progress) request count.
func housekeepingLoads(tx *gorm.DB, businessId string, propertyId int) ([]StaffLoad, error) {
	var staffIds []int
	if err := tx.Model(&Staff{}).
		Where("business_id = ? AND property_id = ? AND department = ? AND is_active = ?",
			businessId, propertyId, StaffDepartmentHousekeeping, true).
		Order("id").
		Pluck("id", &staffIds).Error; err != nil {
		return nil, err
	}
	if len(staffIds) == 0 {
		return nil, nil
	}

	type assignedCount struct {
		AssignedTo int
		Count      int
	}
	var counts []assignedCount
	if err := tx.Model(&HousekeepingRequest{}).
		Select("assigned_to, count(*) as count").
		Where("property_id = ? AND assigned_to IN ? AND status IN ?",
			propertyId, staffIds, []HousekeepingStatus{HousekeepingStatusPending, HousekeepingStatusInProgress}).
		Group("assigned_to").
		Find(&counts).Error; err != nil {
		return nil, err
	}

	countById := make(map[int]int, len(counts))
	for _, c := range counts {
		countById[c.AssignedTo] = c.Count
	}

	loads := make([]StaffLoad, 0, len(staffIds))
	for _, id := range staffIds {
		loads = append(loads, StaffLoad{StaffId: id, Load: countById[id]})
	}
	return loads, nil
}
