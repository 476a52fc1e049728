package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tokopilih/tokopilih/internal/catalog/domain"
	"github.com/tokopilih/tokopilih/pkg/db/pagination"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

var sortColumns = map[string]string{
	domain.SortName:      "name",
	domain.SortPrice:     "price",
	domain.SortRating:    "rating",
	domain.SortCreatedAt: "created_at",
}

func active(db *gorm.DB) *gorm.DB {
	return db.Model(&domain.Product{}).Where("is_active = ?", true)
}

// withTag constrains to rows whose tags array contains the given label.
// Postgres stores tags as jsonb and supports containment directly; other
// dialects go through the datatypes JSON array query.
func withTag(stmt *gorm.DB, tag string) *gorm.DB {
	if stmt.Dialector.Name() == "postgres" {
		return stmt.Where("tags @> ?", jsonTag(tag))
	}
	return stmt.Where(datatypes.JSONArrayQuery("tags").Contains(tag))
}

func jsonTag(tag string) datatypes.JSON {
	value, _ := json.Marshal([]string{tag})
	return datatypes.JSON(value)
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB, filter domain.ListFilter, sort domain.Sort, page pagination.Request) ([]domain.Product, int64, error) {
	stmt := active(db.WithContext(ctx))

	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		stmt = stmt.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[sort.Field]
	if !ok {
		column = "created_at"
	}

	var items []domain.Product
	err := stmt.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: sort.Desc}).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repo) FindActiveByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := active(db.WithContext(ctx)).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) ListRelated(ctx context.Context, db *gorm.DB, category string, excludeID int64, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := active(db.WithContext(ctx)).
		Where("category = ?", category).
		Where("id <> ?", excludeID).
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repo) ListByTag(ctx context.Context, db *gorm.DB, tag string, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := withTag(active(db.WithContext(ctx)), tag).
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repo) ListFeatured(ctx context.Context, db *gorm.DB, limit int) ([]domain.Product, error) {
	stmt := active(db.WithContext(ctx))
	if db.Dialector.Name() == "postgres" {
		stmt = stmt.Where("tags @> ? OR tags @> ?", jsonTag(domain.TagTrending), jsonTag(domain.TagBestseller))
	} else {
		stmt = stmt.Where(
			db.Where(datatypes.JSONArrayQuery("tags").Contains(domain.TagTrending)).
				Or(datatypes.JSONArrayQuery("tags").Contains(domain.TagBestseller)),
		)
	}

	var items []domain.Product
	err := stmt.
		Order("rating DESC").
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repo) ListNew(ctx context.Context, db *gorm.DB, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := withTag(active(db.WithContext(ctx)), domain.TagNew).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repo) ListTopDiscounts(ctx context.Context, db *gorm.DB, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := active(db.WithContext(ctx)).
		Where("original_price IS NOT NULL").
		Where("original_price > price").
		Order("(original_price - price) / original_price DESC").
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repo) CategoryCounts(ctx context.Context, db *gorm.DB, limit int) ([]domain.CategoryCount, error) {
	var counts []domain.CategoryCount
	stmt := active(db.WithContext(ctx)).
		Select("category, COUNT(*) AS product_count").
		Group("category").
		Order("product_count DESC").
		Order("category ASC")
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	err := stmt.Scan(&counts).Error
	return counts, err
}

func (r *repo) DistinctCategories(ctx context.Context, db *gorm.DB) ([]string, error) {
	var categories []string
	err := active(db.WithContext(ctx)).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *repo) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := active(db.WithContext(ctx)).Count(&total).Error
	return total, err
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}
