package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	catalogdomain "github.com/tokopilih/tokopilih/internal/catalog/domain"
	"github.com/tokopilih/tokopilih/internal/clock"
	pkgdb "github.com/tokopilih/tokopilih/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogdomain.Product{}))
	return db
}

func TestEnsureSampleCatalogPopulatesEmptyDatabase(t *testing.T) {
	db := setupDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, EnsureSampleCatalog(db, clk))

	var count int64
	require.NoError(t, db.Model(&catalogdomain.Product{}).Count(&count).Error)
	require.Equal(t, int64(9), count)

	var products []catalogdomain.Product
	require.NoError(t, db.Order("created_at ASC").Find(&products).Error)
	for _, p := range products {
		require.True(t, p.IsActive)
		require.NotEmpty(t, p.Category)
		require.NotEmpty(t, p.ShopeeURL)
		require.True(t, p.CreatedAt.Before(clk.Now()))
	}
	// Timestamps are staggered so created_at ordering is stable.
	for i := 1; i < len(products); i++ {
		require.True(t, products[i-1].CreatedAt.Before(products[i].CreatedAt))
	}
}

func TestShopeeProductIDIsUnique(t *testing.T) {
	db := setupDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, EnsureSampleCatalog(db, clk))

	var existing catalogdomain.Product
	require.NoError(t, db.Order("id ASC").First(&existing).Error)

	dup := existing
	dup.ID = existing.ID + 1
	err := db.Create(&dup).Error
	require.Error(t, err)
	require.True(t, pkgdb.IsDuplicateKeyErr(err))
}

func TestEnsureSampleCatalogIsIdempotent(t *testing.T) {
	db := setupDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, EnsureSampleCatalog(db, clk))

	var first []catalogdomain.Product
	require.NoError(t, db.Order("id ASC").Find(&first).Error)

	clk.Advance(48 * time.Hour)
	require.NoError(t, EnsureSampleCatalog(db, clk))

	var second []catalogdomain.Product
	require.NoError(t, db.Order("id ASC").Find(&second).Error)
	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
	}
}
