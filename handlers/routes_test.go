package handlers

import (
	"sync"
	"testing"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"gorm.io/gorm/schema"
)

// every whitelisted filter field must be a real column, otherwise the
// generated WHERE clause fails at the store
func TestFilterFieldsMatchModelColumns(t *testing.T) {
	cases := []struct {
		entity string
		model  interface{}
		fields []string
	}{
		{"properties", models.Property{}, propertyFilterFields},
		{"room-types", models.RoomType{}, roomTypeFilterFields},
		{"rooms", models.Room{}, roomFilterFields},
		{"guests", models.Guest{}, guestFilterFields},
		{"staffs", models.Staff{}, staffFilterFields},
		{"reservations", models.Reservation{}, reservationFilterFields},
		{"billings", models.Billing{}, billingFilterFields},
		{"revenues", models.Revenue{}, revenueFilterFields},
		{"housekeeping-requests", models.HousekeepingRequest{}, housekeepingFields},
	}

	cache := &sync.Map{}
	for _, tc := range cases {
		s, err := schema.Parse(tc.model, cache, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("%s: parse schema: %v", tc.entity, err)
		}
		for _, field := range tc.fields {
			if _, ok := s.FieldsByDBName[field]; !ok {
				t.Fatalf("%s: filter field %q is not a column of %T", tc.entity, field, tc.model)
			}
		}
	}
}
