package domain

import (
	"context"

	"github.com/tokopilih/tokopilih/pkg/db/pagination"
	"gorm.io/gorm"
)

// ListFilter narrows ListActive. Empty fields are ignored.
type ListFilter struct {
	Category string
	Search   string
}

// Sort is a normalized ordering; Field is always one of the allowed columns.
type Sort struct {
	Field string
	Desc  bool
}

// Repository reads active products. The catalog never mutates rows outside the
// seeding flow, so Create is the only write.
type Repository interface {
	ListActive(ctx context.Context, db *gorm.DB, filter ListFilter, sort Sort, page pagination.Request) ([]Product, int64, error)
	FindActiveByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	ListRelated(ctx context.Context, db *gorm.DB, category string, excludeID int64, limit int) ([]Product, error)
	ListByTag(ctx context.Context, db *gorm.DB, tag string, limit int) ([]Product, error)
	ListFeatured(ctx context.Context, db *gorm.DB, limit int) ([]Product, error)
	ListNew(ctx context.Context, db *gorm.DB, limit int) ([]Product, error)
	ListTopDiscounts(ctx context.Context, db *gorm.DB, limit int) ([]Product, error)
	CategoryCounts(ctx context.Context, db *gorm.DB, limit int) ([]CategoryCount, error)
	DistinctCategories(ctx context.Context, db *gorm.DB) ([]string, error)
	CountActive(ctx context.Context, db *gorm.DB) (int64, error)
	Create(ctx context.Context, db *gorm.DB, product *Product) error
}
