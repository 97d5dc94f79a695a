package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/models/reports"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/gin-gonic/gin"
)

func OccupancyReport(c *gin.Context) {
	records, err := reports.GetOccupancyReport(c.Request.Context())
	if err != nil {
		RespondError(c, "report.go", "OccupancyReport", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func RevenueByCategoryReport(c *gin.Context) {
	propertyId, fromDate, toDate, err := revenueReportParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	records, err := reports.GetRevenueByCategoryReport(c.Request.Context(), propertyId, fromDate, toDate)
	if err != nil {
		RespondError(c, "report.go", "RevenueByCategoryReport", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

// RevenueByCategoryExport streams the same report as an xlsx download.
func RevenueByCategoryExport(c *gin.Context) {
	propertyId, fromDate, toDate, err := revenueReportParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	records, err := reports.GetRevenueByCategoryReport(c.Request.Context(), propertyId, fromDate, toDate)
	if err != nil {
		RespondError(c, "report.go", "RevenueByCategoryExport", err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=revenue.xlsx")
	if err := reports.WriteRevenueExcel(c.Writer, records); err != nil {
		RespondError(c, "report.go", "RevenueByCategoryExport", err)
	}
}

func revenueReportParams(c *gin.Context) (*int, time.Time, time.Time, error) {
	var propertyId *int
	if raw := c.Query("property_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, time.Time{}, time.Time{}, err
		}
		propertyId = &id
	} else if id, ok := utils.GetPropertyIdFromContext(c.Request.Context()); ok && id > 0 {
		// fall back to the property pinned on the request
		propertyId = &id
	}

	now := time.Now().UTC()
	fromDate := now.AddDate(0, -1, 0)
	toDate := now
	var err error
	if raw := c.Query("from_date"); raw != "" {
		if fromDate, err = time.Parse("2006-01-02", raw); err != nil {
			return nil, time.Time{}, time.Time{}, err
		}
	}
	if raw := c.Query("to_date"); raw != "" {
		if toDate, err = time.Parse("2006-01-02", raw); err != nil {
			return nil, time.Time{}, time.Time{}, err
		}
		toDate = toDate.Add(24*time.Hour - time.Nanosecond)
	}
	return propertyId, fromDate, toDate, nil
}
