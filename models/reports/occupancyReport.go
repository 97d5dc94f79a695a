package reports

import (
	"context"
	"errors"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
)

type OccupancyResponse struct {
	PropertyId    int     `json:"PropertyId"`
	PropertyName  *string `json:"PropertyName,omitempty"`
	TotalRooms    int     `json:"TotalRooms"`
	OccupiedRooms int     `json:"OccupiedRooms"`
	ReservedRooms int     `json:"ReservedRooms"`
	OutOfService  int     `json:"OutOfService"`
}

func GetOccupancyReport(ctx context.Context) ([]*OccupancyResponse, error) {

	sql := `
SELECT
    occ.property_id,
    occ.total_rooms,
    occ.occupied_rooms,
    occ.reserved_rooms,
    occ.out_of_service,
    properties.name AS property_name
FROM
    (SELECT
        property_id,
            COUNT(rooms.id) AS total_rooms,
            SUM(CASE WHEN status = 'occupied' THEN 1 ELSE 0 END) AS occupied_rooms,
            SUM(CASE WHEN status = 'reserved' THEN 1 ELSE 0 END) AS reserved_rooms,
            SUM(CASE WHEN status IN ('maintenance' , 'cleaning') THEN 1 ELSE 0 END) AS out_of_service
    FROM
        rooms
    WHERE
        business_id = @businessId
    GROUP BY property_id) AS occ
        LEFT JOIN
    properties ON properties.id = occ.property_id
ORDER BY occ.property_id;
`

	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	var records []*OccupancyResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"businessId": businessId,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
