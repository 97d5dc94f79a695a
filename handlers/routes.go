package handlers

import (
	"net/http"

	"bitbucket.org/lodgefocus/hotelops_backend/middlewares"
	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"github.com/gin-gonic/gin"
)

// filterable columns per entity, whitelisted against the query-param parser
var (
	propertyFilterFields = []string{"name", "city", "country", "is_active"}
	roomTypeFilterFields = []string{"property_id", "name", "max_occupancy"}
	roomFilterFields     = []string{"property_id", "room_type_id", "number", "floor", "status"}
	guestFilterFields    = []string{"name", "email", "phone", "nationality"}
	staffFilterFields    = []string{"property_id", "name", "department", "role", "is_active"}

	reservationFilterFields = []string{"property_id", "guest_id", "booking_number", "status", "check_in_date", "check_out_date"}
	billingFilterFields     = []string{"property_id", "reservation_id", "guest_id", "invoice_number", "category", "status", "amount"}
	revenueFilterFields     = []string{"property_id", "billing_id", "category", "status"}
	housekeepingFields      = []string{"property_id", "room_id", "assigned_to", "status", "priority"}
)

// RegisterRoutes mounts the REST surface. Tenant scoping rides on the auth
// middleware; the guard plugin applies the business_id filter downstream.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/login", Login)
	r.POST("/api/businesses", CreateBusiness)

	api := r.Group("/api", middlewares.RequireAuth())

	api.GET("/business", GetBusiness)

	NewResource[models.Property](propertyFilterFields).Register(api, "properties")
	NewResource[models.RoomType](roomTypeFilterFields).Register(api, "room-types")
	NewResource[models.Room](roomFilterFields).Register(api, "rooms")
	NewResource[models.Staff](staffFilterFields).Register(api, "staffs")

	guests := NewResource[models.Guest](guestFilterFields)
	api.GET("/guests", guests.List)
	api.POST("/guests", CreateGuest)
	api.GET("/guests/:id", guests.Get)
	api.PATCH("/guests/:id", guests.Update)
	api.DELETE("/guests/:id", guests.Delete)

	reservations := NewResource[models.Reservation](reservationFilterFields)
	api.GET("/reservations", reservations.List)
	api.POST("/reservations", CreateReservation)
	api.GET("/reservations/:id", reservations.Get)
	api.PATCH("/reservations/:id", reservations.Update)
	api.DELETE("/reservations/:id", reservations.Delete)

	billings := NewResource[models.Billing](billingFilterFields)
	api.GET("/billings", billings.List)
	api.POST("/billings", CreateBilling)
	api.GET("/billings/:id", billings.Get)
	api.PATCH("/billings/:id", billings.Update)
	api.DELETE("/billings/:id", billings.Delete)

	NewResource[models.Revenue](revenueFilterFields).Register(api, "revenues")
	NewResource[models.HousekeepingRequest](housekeepingFields).Register(api, "housekeeping-requests")

	api.GET("/reports/occupancy", OccupancyReport)
	api.GET("/reports/revenue", RevenueByCategoryReport)
	api.GET("/reports/revenue/export", RevenueByCategoryExport)

	api.GET("/meta/room-types", MetaRoomTypes)
	api.GET("/meta/rooms/:id", MetaRoom)
}
