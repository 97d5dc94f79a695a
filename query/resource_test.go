package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type inventoryItem struct {
	ID       int    `gorm:"primary_key"`
	Name     string `gorm:"size:100"`
	Quantity int
	Status   string `gorm:"size:20"`
}

func (i inventoryItem) GetId() int {
	return i.ID
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&inventoryItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service[inventoryItem], *gorm.DB) {
	db := openTestDB(t)
	svc := NewService[inventoryItem](db, Policy{MaxAttempts: 2, BaseDelay: 0, BackoffFactor: 1})
	return svc, db
}

func TestServiceCreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &inventoryItem{Name: "towels", Quantity: 40, Status: "stocked"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created row has no id")
	}

	got, err := svc.GetById(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "towels" || got.Quantity != 40 {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestServiceGetByIdNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetById(context.Background(), 9999)
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected ErrorRecordNotFound, got %v", err)
	}
}

func TestServiceListFiltersAndPaginates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		status := "stocked"
		if i%5 == 0 {
			status = "depleted"
		}
		if err := db.Create(&inventoryItem{Name: fmt.Sprintf("item-%02d", i), Quantity: i, Status: status}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, total, err := svc.List(ctx, map[string]interface{}{"status": "stocked"}, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 20 {
		t.Fatalf("total: got %d, want 20", total)
	}
	if len(rows) != 10 {
		t.Fatalf("page size: got %d, want 10", len(rows))
	}

	// second page picks up where the first left off
	page2, _, err := svc.List(ctx, map[string]interface{}{"status": "stocked"}, 2, 10)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2) != 10 {
		t.Fatalf("page 2 size: got %d", len(page2))
	}
	if page2[0].ID <= rows[len(rows)-1].ID {
		t.Fatalf("pages overlap: page1 ends at %d, page2 starts at %d", rows[len(rows)-1].ID, page2[0].ID)
	}
}

func TestServiceListRangeKeys(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		if err := db.Create(&inventoryItem{Name: fmt.Sprintf("item-%d", i), Quantity: i, Status: "stocked"}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, total, err := svc.List(ctx, map[string]interface{}{
		"quantity_from": 3,
		"quantity_to":   7,
	}, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || len(rows) != 5 {
		t.Fatalf("range filter: total=%d rows=%d, want 5/5", total, len(rows))
	}
	for _, row := range rows {
		if row.Quantity < 3 || row.Quantity > 7 {
			t.Fatalf("row outside range: %+v", row)
		}
	}
}

func TestServiceListNilAndEmptyFiltersIgnored(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := db.Create(&inventoryItem{Name: "x", Status: "stocked"}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	_, total, err := svc.List(ctx, map[string]interface{}{"status": "", "name": nil}, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("absent filters must match everything: got %d", total)
	}
}

func TestServiceUpdateById(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &inventoryItem{Name: "soap", Quantity: 5, Status: "stocked"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateById(ctx, created.ID, map[string]interface{}{"quantity": 2, "status": "low"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 2 || updated.Status != "low" {
		t.Fatalf("unexpected row after update: %+v", updated)
	}
	if updated.Name != "soap" {
		t.Fatalf("untouched column changed: %+v", updated)
	}
}

func TestServiceUpdateByIdMissingRowIsIntegrityError(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateById(context.Background(), 4242, map[string]interface{}{"quantity": 1})
	var integrity *utils.IntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
	if integrity.Id != 4242 {
		t.Fatalf("integrity error id: got %d", integrity.Id)
	}
}

func TestServiceDeleteByIdIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &inventoryItem{Name: "mop", Status: "stocked"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteById(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetById(ctx, created.ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("row still present after delete: %v", err)
	}
	// deleting again is not an error
	if err := svc.DeleteById(ctx, created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
