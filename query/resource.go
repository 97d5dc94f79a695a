package query

import (
	"context"
	"errors"

	"bitbucket.org/lodgefocus/hotelops_backend/config"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"gorm.io/gorm"
)

const DefaultPageLimit = 20

// Identifier is satisfied by every row record exposed through a Service.
type Identifier interface {
	GetId() int
}

// Service is a generic resource-access layer bound to exactly one backing
// table (T's table) for its lifetime. Mutations run through the retry
// executor; reads are direct round trips. Tenant scoping is applied by the
// TenantGuardPlugin from the request context, not here.
type Service[T Identifier] struct {
	db    *gorm.DB
	retry *Executor
}

// NewService builds a service over db. A nil db defers to the process-wide
// handle at call time (matches how the rest of the codebase reaches the DB).
func NewService[T Identifier](db *gorm.DB, policy Policy) *Service[T] {
	return &Service[T]{db: db, retry: NewExecutor(policy)}
}

func (s *Service[T]) dbCtx(ctx context.Context) *gorm.DB {
	db := s.db
	if db == nil {
		db = config.GetDB()
	}
	return db.WithContext(ctx)
}

func (s *Service[T]) tableName() string {
	var model T
	stmt := &gorm.Statement{DB: s.dbCtx(context.Background())}
	if err := stmt.Parse(&model); err != nil {
		return ""
	}
	return stmt.Schema.Table
}

// Create inserts a single row and returns it with store-generated fields
// filled in. An empty insert response is ErrorNoDataReturned.
func (s *Service[T]) Create(ctx context.Context, row *T) (*T, error) {
	affected, err := Execute(s.retry, ctx, func(ctx context.Context) Result[int64] {
		tx := s.dbCtx(ctx).Create(row)
		if tx.Error != nil {
			return Err[int64](tx.Error)
		}
		return Ok(tx.RowsAffected)
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.ErrorNoDataReturned
	}
	return s.GetById(ctx, (*row).GetId())
}

// GetById fetches one row by primary key. Zero rows is the typed
// utils.ErrorRecordNotFound, distinguishable from transport errors.
func (s *Service[T]) GetById(ctx context.Context, id int) (*T, error) {
	var row T
	err := s.dbCtx(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &row, nil
}

// List composes the filter engine and pagination over the backing table.
// totalCount reflects the filtered set independent of the page slice.
func (s *Service[T]) List(ctx context.Context, filters map[string]interface{}, page, limit int) ([]*T, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	reduced, special := ReduceSpecialKeys(filters)
	cfg := Config{Conditions: append(Build(reduced, OpEq), special...)}

	var model T
	var total int64
	if err := Apply(s.dbCtx(ctx).Model(&model), cfg).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	r := ToRange(page, limit)
	rows := make([]*T, 0, limit)
	err := Apply(s.dbCtx(ctx).Model(&model), cfg).
		Order("id").
		Offset(r.From).
		Limit(r.To - r.From + 1).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateById applies a partial column update. Zero matching rows is an
// IntegrityError, surfaced immediately and never retried. The row is
// fetched first so store-side rules observe the prior state.
func (s *Service[T]) UpdateById(ctx context.Context, id int, partial map[string]interface{}) (*T, error) {
	row, err := s.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrorRecordNotFound) {
			return nil, &utils.IntegrityError{Op: "update", Table: s.tableName(), Id: id}
		}
		return nil, err
	}

	affected, err := Execute(s.retry, ctx, func(ctx context.Context) Result[int64] {
		tx := s.dbCtx(ctx).Model(row).Updates(partial)
		if tx.Error != nil {
			return Err[int64](tx.Error)
		}
		return Ok(tx.RowsAffected)
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, &utils.IntegrityError{Op: "update", Table: s.tableName(), Id: id}
	}
	return s.GetById(ctx, id)
}

// DeleteById removes a row. Deleting a nonexistent id is a no-op, not an
// error; the operation is idempotent at the service boundary.
func (s *Service[T]) DeleteById(ctx context.Context, id int) error {
	var model T
	_, err := Execute(s.retry, ctx, func(ctx context.Context) Result[int64] {
		tx := s.dbCtx(ctx).Where("id = ?", id).Delete(&model)
		if tx.Error != nil {
			return Err[int64](tx.Error)
		}
		return Ok(tx.RowsAffected)
	})
	return err
}
