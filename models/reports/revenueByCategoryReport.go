package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type RevenueByCategoryResponse struct {
	PropertyId   int             `json:"PropertyId"`
	PropertyName *string         `json:"PropertyName,omitempty"`
	Category     string          `json:"Category"`
	EntryCount   int             `json:"EntryCount"`
	TotalAmount  decimal.Decimal `json:"TotalAmount"`
}

func GetRevenueByCategoryReport(ctx context.Context, propertyId *int, fromDate time.Time, toDate time.Time) ([]*RevenueByCategoryResponse, error) {

	sqlT := `
SELECT
    rev.property_id,
    rev.category,
    rev.entry_count,
    rev.total_amount,
    properties.name AS property_name
FROM
    (SELECT
        property_id,
            category,
            COUNT(revenues.id) AS entry_count,
            SUM(amount) AS total_amount
    FROM
        revenues
    WHERE
        business_id = @businessId
            AND created_at BETWEEN @fromDate AND @toDate
            AND status NOT IN ('void' , 'refunded')
		{{- if .propertyId }} AND property_id = @propertyId {{- end }}
    GROUP BY property_id , category) AS rev
        LEFT JOIN
    properties ON properties.id = rev.property_id
ORDER BY rev.property_id , rev.category;
`

	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	if propertyId != nil && *propertyId != 0 {
		if err := utils.ValidateResourceId[models.Property](ctx, businessId, propertyId); err != nil {
			return nil, errors.New("property not found")
		}
	}

	// generating sql from template
	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"propertyId": utils.DereferencePtr(propertyId),
	})
	if err != nil {
		return nil, err
	}

	var records []*RevenueByCategoryResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"businessId": businessId,
		"fromDate":   fromDate,
		"toDate":     toDate,
		"propertyId": propertyId,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r RevenueByCategoryResponse) GetCellValues() []interface{} {
	return []interface{}{
		utils.DereferencePtr(r.PropertyName, ""),
		r.Category,
		r.EntryCount,
		r.TotalAmount,
	}
}

// WriteRevenueExcel renders the revenue report rows as an xlsx workbook.
func WriteRevenueExcel(w io.Writer, data []*RevenueByCategoryResponse) error {

	f := excelize.NewFile()
	sheetName := "Sheet1"
	_, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	// Add headers
	f.SetCellValue(sheetName, "A1", "Property")
	f.SetCellValue(sheetName, "B1", "Category")
	f.SetCellValue(sheetName, "C1", "Entries")
	f.SetCellValue(sheetName, "D1", "TotalAmount")

	// Add data
	for i, d := range data {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), utils.DereferencePtr(d.PropertyName, ""))
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), d.Category)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), d.EntryCount)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), d.TotalAmount)
	}

	return f.Write(w)
}
