package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/tokopilih/tokopilih/internal/catalog/domain"
	"github.com/tokopilih/tokopilih/internal/clock"
	pkgdb "github.com/tokopilih/tokopilih/pkg/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureSampleCatalog inserts the curated sample products when the catalog is
// empty. Existing rows are left untouched, so the seed is safe to run on every
// startup.
func EnsureSampleCatalog(db *gorm.DB, clk clock.Clock) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&catalogdomain.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := clk.Now()
		products := sampleProducts(node)
		for i, p := range products {
			// Stagger timestamps so created_at ordering is meaningful.
			p.CreatedAt = now.Add(-time.Duration(len(products)-i) * 24 * time.Hour)
			p.UpdatedAt = p.CreatedAt
			if err := tx.WithContext(ctx).Create(&p).Error; err != nil {
				// Another replica won the race between the count check and
				// the insert; the catalog is already seeded.
				if pkgdb.IsDuplicateKeyErr(err) {
					return nil
				}
				return err
			}
		}
		return nil
	})
}

func sampleProducts(node *snowflake.Node) []catalogdomain.Product {
	return []catalogdomain.Product{
		product(node, "iPhone 15 Pro Max 256GB",
			"iPhone terbaru dengan teknologi A17 Pro chip, kamera 48MP dengan zoom 5x, dan layar Super Retina XDR 6.7 inch.",
			18999000, price(19999000), 4.8, 2547, "Handphone & Aksesoris",
			"https://shopee.co.id/iPhone-15-Pro-Max", "1234567890",
			"trending", "bestseller", "premium"),
		product(node, "MacBook Air M2 13 inch",
			"Laptop Apple terbaru dengan chip M2, layar Liquid Retina 13.6 inch, dan daya tahan baterai hingga 18 jam.",
			16999000, price(17999000), 4.9, 1823, "Komputer & Laptop",
			"https://shopee.co.id/MacBook-Air-M2", "1234567891",
			"new", "premium", "bestseller"),
		product(node, "Samsung Galaxy S24 Ultra",
			"Smartphone flagship Samsung dengan S Pen, kamera 200MP, dan AI terdepan untuk produktivitas maksimal.",
			17999000, price(18999000), 4.7, 3241, "Handphone & Aksesoris",
			"https://shopee.co.id/Samsung-Galaxy-S24-Ultra", "1234567892",
			"trending", "new", "premium"),
		product(node, "Sony WH-1000XM5 Wireless Headphone",
			"Headphone noise cancelling premium dengan kualitas suara superior dan baterai hingga 30 jam.",
			4499000, price(5499000), 4.8, 1567, "Audio & Elektronik",
			"https://shopee.co.id/Sony-WH-1000XM5", "1234567893",
			"bestseller"),
		product(node, "Xiaomi Robot Vacuum S10",
			"Robot vacuum pintar dengan navigasi laser, daya hisap 4000Pa, dan kontrol via aplikasi.",
			2799000, price(3999000), 4.5, 892, "Perlengkapan Rumah",
			"https://shopee.co.id/Xiaomi-Robot-Vacuum-S10", "1234567894",
			"trending"),
		product(node, "Nike Air Force 1 Low White",
			"Sneakers klasik Nike dengan desain timeless, bahan kulit premium, dan kenyamanan sepanjang hari.",
			1549000, nil, 4.6, 4120, "Fashion Pria",
			"https://shopee.co.id/Nike-Air-Force-1", "1234567895",
			"bestseller"),
		product(node, "Kindle Paperwhite 11th Gen",
			"E-reader dengan layar 6.8 inch anti silau, tahan air, dan baterai hingga 10 minggu.",
			2299000, price(2599000), 4.7, 634, "Buku & Alat Tulis",
			"https://shopee.co.id/Kindle-Paperwhite", "1234567896",
			"new"),
		product(node, "Logitech MX Master 3S",
			"Mouse wireless ergonomis dengan scroll elektromagnetik dan sensor 8000 DPI.",
			1399000, nil, 4.8, 2038, "Komputer & Laptop",
			"https://shopee.co.id/Logitech-MX-Master-3S", "1234567897",
			"bestseller"),
		product(node, "Philips Air Fryer XL",
			"Air fryer kapasitas 6.2L dengan teknologi Rapid Air untuk masakan renyah tanpa minyak.",
			1899000, price(2499000), 4.6, 1755, "Perlengkapan Rumah",
			"https://shopee.co.id/Philips-Air-Fryer-XL", "1234567898",
			"trending", "new"),
	}
}

func product(node *snowflake.Node, name, description string, priceIDR float64, originalPrice *float64, rating float64, reviews int, category, shopeeURL, shopeeProductID string, tags ...string) catalogdomain.Product {
	return catalogdomain.Product{
		ID:              node.Generate().Int64(),
		Name:            name,
		Description:     &description,
		Price:           priceIDR,
		OriginalPrice:   originalPrice,
		ImageURL:        "https://via.placeholder.com/300x300?text=" + shopeeProductID,
		Rating:          rating,
		ReviewCount:     reviews,
		Category:        category,
		ShopeeURL:       shopeeURL,
		ShopeeProductID: shopeeProductID,
		IsActive:        true,
		Tags:            datatypes.NewJSONSlice(tags),
	}
}

func price(v float64) *float64 { return &v }
