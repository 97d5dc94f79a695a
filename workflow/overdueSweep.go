package workflow

import (
	"context"
	"os"
	"strconv"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/appctx"
	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OverdueSweeper periodically flips pending housekeeping requests whose
// due_by has elapsed to overdue. The transition is one set-based UPDATE;
// no per-row side effects.
type OverdueSweeper struct {
	DB     *gorm.DB
	Logger *logrus.Logger

	SweepInterval time.Duration
}

func NewOverdueSweeper(db *gorm.DB, logger *logrus.Logger) *OverdueSweeper {
	interval := time.Hour
	if v := os.Getenv("HOUSEKEEPING_SWEEP_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = time.Duration(n) * time.Second
		}
	}
	return &OverdueSweeper{
		DB:            db,
		Logger:        logger,
		SweepInterval: interval,
	}
}

func (s *OverdueSweeper) Run(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if _, err := RunOverdueSweep(ctx, s.db()); err != nil {
			config.LogError(s.logger(), "overdueSweep.go", "Run", "sweep failed", nil, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.SweepInterval):
		}
	}
}

func (s *OverdueSweeper) db() *gorm.DB {
	if s.DB != nil {
		return s.DB
	}
	return config.GetDB()
}

func (s *OverdueSweeper) logger() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return config.GetLogger()
}

// RunOverdueSweep runs one sweep pass and returns the number of requests
// flipped to overdue.
func RunOverdueSweep(ctx context.Context, db *gorm.DB) (int64, error) {
	ctx = context.WithValue(ctx, appctx.ContextKeySkipTenantScope, true)
	tx := db.WithContext(ctx).Model(&models.HousekeepingRequest{}).
		Where("status = ? AND due_by < ?", models.HousekeepingStatusPending, time.Now().UTC()).
		UpdateColumn("status", models.HousekeepingStatusOverdue)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
