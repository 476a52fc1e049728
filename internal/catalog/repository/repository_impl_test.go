package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tokopilih/tokopilih/internal/catalog/domain"
	"github.com/tokopilih/tokopilih/pkg/db/pagination"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))
	return db
}

type row struct {
	name          string
	price         float64
	originalPrice *float64
	rating        float64
	category      string
	active        bool
	tags          []string
	createdAt     time.Time
}

var nextID int64

func insert(t *testing.T, db *gorm.DB, r row) domain.Product {
	t.Helper()
	nextID++
	if r.category == "" {
		r.category = "Misc"
	}
	if r.createdAt.IsZero() {
		r.createdAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(nextID) * time.Hour)
	}
	p := domain.Product{
		ID:              nextID,
		Name:            r.name,
		Price:           r.price,
		OriginalPrice:   r.originalPrice,
		ImageURL:        "https://example.com/p.png",
		Rating:          r.rating,
		ReviewCount:     10,
		Category:        r.category,
		ShopeeURL:       "https://shopee.co.id/p",
		ShopeeProductID: fmt.Sprintf("sp-%d", nextID),
		IsActive:        r.active,
		Tags:            datatypes.NewJSONSlice(r.tags),
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.createdAt,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func ptr(v float64) *float64 { return &v }

func TestListActiveExcludesInactive(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "Active A", price: 1000, active: true})
	insert(t, db, row{name: "Active B", price: 2000, active: true})
	insert(t, db, row{name: "Hidden", price: 3000, active: false})

	items, total, err := r.ListActive(ctx, db, domain.ListFilter{}, domain.Sort{Field: domain.SortCreatedAt, Desc: true}, pagination.Request{Page: 1, PerPage: domain.PerPage})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	for _, item := range items {
		require.True(t, item.IsActive)
	}

	count, err := r.CountActive(ctx, db)
	require.NoError(t, err)
	require.Equal(t, total, count)
}

func TestListActiveCategoryFilterIsExact(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "TV", price: 1000, category: "Electronics", active: true})
	insert(t, db, row{name: "Radio", price: 500, category: "Electronics", active: true})
	insert(t, db, row{name: "Shirt", price: 100, category: "Fashion", active: true})
	insert(t, db, row{name: "Old TV", price: 900, category: "Electronics", active: false})

	items, total, err := r.ListActive(ctx, db, domain.ListFilter{Category: "Electronics"}, domain.Sort{Field: domain.SortCreatedAt, Desc: true}, pagination.Request{Page: 1, PerPage: domain.PerPage})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	for _, item := range items {
		require.Equal(t, "Electronics", item.Category)
	}
}

func TestListActiveSearchIsCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "iPhone 15 Pro", price: 1000, active: true})
	insert(t, db, row{name: "Samsung Galaxy", price: 900, active: true})

	items, total, err := r.ListActive(ctx, db, domain.ListFilter{Search: "IPHONE"}, domain.Sort{Field: domain.SortCreatedAt, Desc: true}, pagination.Request{Page: 1, PerPage: domain.PerPage})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "iPhone 15 Pro", items[0].Name)
}

func TestListActiveSortByPriceAsc(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "Mid", price: 2000, active: true})
	insert(t, db, row{name: "Cheap", price: 1000, active: true})
	insert(t, db, row{name: "Expensive", price: 3000, active: true})

	items, _, err := r.ListActive(ctx, db, domain.ListFilter{}, domain.Sort{Field: domain.SortPrice, Desc: false}, pagination.Request{Page: 1, PerPage: domain.PerPage})
	require.NoError(t, err)
	require.Equal(t, []string{"Cheap", "Mid", "Expensive"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestListActivePagination(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		insert(t, db, row{name: fmt.Sprintf("Product %02d", i), price: 1000, active: true})
	}

	items, total, err := r.ListActive(ctx, db, domain.ListFilter{}, domain.Sort{Field: domain.SortCreatedAt, Desc: true}, pagination.Request{Page: 5, PerPage: domain.PerPage})
	require.NoError(t, err)
	require.Equal(t, int64(50), total)
	require.Len(t, items, 2)
	require.Equal(t, 5, pagination.LastPage(total, domain.PerPage))
}

func TestListActiveBeyondLastPageIsEmpty(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "Only", price: 1000, active: true})

	items, total, err := r.ListActive(ctx, db, domain.ListFilter{}, domain.Sort{Field: domain.SortCreatedAt, Desc: true}, pagination.Request{Page: 9, PerPage: domain.PerPage})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Empty(t, items)
}

func TestCreatePersistsInactiveFlag(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	p := domain.Product{
		ID:              500,
		Name:            "Retired",
		Price:           1000,
		ImageURL:        "https://example.com/p.png",
		Category:        "Misc",
		ShopeeURL:       "https://shopee.co.id/p",
		ShopeeProductID: "sp-500",
		IsActive:        false,
		Tags:            datatypes.NewJSONSlice([]string{}),
	}
	require.NoError(t, r.Create(ctx, db, &p))

	var stored bool
	require.NoError(t, db.Raw("SELECT is_active FROM products WHERE id = ?", p.ID).Scan(&stored).Error)
	require.False(t, stored)

	found, err := r.FindActiveByID(ctx, db, p.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestFindActiveByID(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	activeRow := insert(t, db, row{name: "Visible", price: 1000, active: true})
	inactiveRow := insert(t, db, row{name: "Hidden", price: 1000, active: false})

	found, err := r.FindActiveByID(ctx, db, activeRow.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, activeRow.ID, found.ID)

	found, err = r.FindActiveByID(ctx, db, inactiveRow.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	found, err = r.FindActiveByID(ctx, db, 999999)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestListRelated(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	anchor := insert(t, db, row{name: "Anchor", price: 1000, category: "Electronics", active: true})
	for i := 0; i < 6; i++ {
		insert(t, db, row{name: fmt.Sprintf("Related %d", i), price: 1000, category: "Electronics", active: true})
	}
	insert(t, db, row{name: "Other", price: 1000, category: "Fashion", active: true})

	items, err := r.ListRelated(ctx, db, "Electronics", anchor.ID, domain.RelatedLimit)
	require.NoError(t, err)
	require.Len(t, items, domain.RelatedLimit)
	for _, item := range items {
		require.NotEqual(t, anchor.ID, item.ID)
		require.Equal(t, "Electronics", item.Category)
	}
}

func TestListFeaturedOrdersByRating(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "Trendy", price: 1000, rating: 4.2, tags: []string{"trending"}, active: true})
	insert(t, db, row{name: "Seller", price: 1000, rating: 4.9, tags: []string{"bestseller"}, active: true})
	insert(t, db, row{name: "Both", price: 1000, rating: 4.5, tags: []string{"trending", "bestseller"}, active: true})
	insert(t, db, row{name: "Plain", price: 1000, rating: 5.0, tags: []string{"premium"}, active: true})
	insert(t, db, row{name: "HiddenTrend", price: 1000, rating: 5.0, tags: []string{"trending"}, active: false})

	items, err := r.ListFeatured(ctx, db, domain.FeaturedLimit)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Seller", items[0].Name)
	require.Equal(t, "Both", items[1].Name)
	require.Equal(t, "Trendy", items[2].Name)
}

func TestListNewOrdersByCreatedAtDesc(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	insert(t, db, row{name: "Older", price: 1000, tags: []string{"new"}, active: true, createdAt: base})
	insert(t, db, row{name: "Newest", price: 1000, tags: []string{"new"}, active: true, createdAt: base.Add(48 * time.Hour)})
	insert(t, db, row{name: "Middle", price: 1000, tags: []string{"new"}, active: true, createdAt: base.Add(24 * time.Hour)})
	insert(t, db, row{name: "Untagged", price: 1000, active: true, createdAt: base.Add(72 * time.Hour)})

	items, err := r.ListNew(ctx, db, domain.NewLimit)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Newest", items[0].Name)
	require.Equal(t, "Middle", items[1].Name)
	require.Equal(t, "Older", items[2].Name)
}

func TestListByTag(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "Premium A", price: 1000, tags: []string{"premium"}, active: true})
	insert(t, db, row{name: "Premium B", price: 1000, tags: []string{"premium", "new"}, active: true})
	insert(t, db, row{name: "Plain", price: 1000, tags: []string{"basic"}, active: true})

	items, err := r.ListByTag(ctx, db, "premium", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestListTopDiscounts(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	// 20% discount
	insert(t, db, row{name: "Small", price: 80000, originalPrice: ptr(100000), active: true})
	// 50% discount
	insert(t, db, row{name: "Big", price: 50000, originalPrice: ptr(100000), active: true})
	// original price below price, not a discount
	insert(t, db, row{name: "Marked up", price: 120000, originalPrice: ptr(100000), active: true})
	// equal price, not a discount
	insert(t, db, row{name: "Even", price: 100000, originalPrice: ptr(100000), active: true})
	insert(t, db, row{name: "No original", price: 100000, active: true})

	items, err := r.ListTopDiscounts(ctx, db, domain.DiscountLimit)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Big", items[0].Name)
	require.Equal(t, "Small", items[1].Name)
}

func TestCategoryCounts(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		insert(t, db, row{name: fmt.Sprintf("E%d", i), price: 1000, category: "Electronics", active: true})
	}
	insert(t, db, row{name: "F1", price: 1000, category: "Fashion", active: true})
	insert(t, db, row{name: "Hidden", price: 1000, category: "Fashion", active: false})

	counts, err := r.CategoryCounts(ctx, db, domain.CategoryLimit)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	require.Equal(t, "Electronics", counts[0].Category)
	require.Equal(t, int64(3), counts[0].ProductCount)
	require.Equal(t, int64(1), counts[1].ProductCount)

	total, err := r.CountActive(ctx, db)
	require.NoError(t, err)
	var sum int64
	for _, c := range counts {
		sum += c.ProductCount
	}
	require.Equal(t, total, sum)
}

func TestDistinctCategoriesSorted(t *testing.T) {
	db := setupDB(t)
	r := Provide()
	ctx := context.Background()

	insert(t, db, row{name: "Z", price: 1000, category: "Zubehor", active: true})
	insert(t, db, row{name: "A", price: 1000, category: "Audio", active: true})
	insert(t, db, row{name: "A2", price: 1000, category: "Audio", active: true})
	insert(t, db, row{name: "Hidden", price: 1000, category: "Hidden Category", active: false})

	categories, err := r.DistinctCategories(ctx, db)
	require.NoError(t, err)
	require.Equal(t, []string{"Audio", "Zubehor"}, categories)
}
