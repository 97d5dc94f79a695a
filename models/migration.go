package models

import (
	"log"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Business{},
		&Property{}, &RoomType{}, &Room{},
		&Guest{}, &Staff{},
		&Reservation{}, &ReservationRoom{},
		&Billing{}, &Revenue{},
		&HousekeepingRequest{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
