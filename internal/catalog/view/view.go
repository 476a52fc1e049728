// Package view derives display fields from stored product values. Everything
// here is a pure projection; nothing is ever written back to the entity.
package view

import (
	"math"

	"github.com/tokopilih/tokopilih/internal/catalog/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatPrice renders an IDR amount rounded to whole rupiah with Indonesian
// digit grouping, e.g. 100000 -> "Rp 100.000".
func FormatPrice(value float64) string {
	return printer.Sprintf("Rp %d", int64(math.Round(value)))
}

// DiscountPercentage returns the rounded discount percent, or nil when
// originalPrice is absent or not strictly greater than price. Rounding is
// half away from zero: 100000 against 150000 yields 33.
func DiscountPercentage(price float64, originalPrice *float64) *int {
	if originalPrice == nil || *originalPrice <= price {
		return nil
	}
	pct := int(math.Round((*originalPrice - price) / *originalPrice * 100))
	return &pct
}

// Project builds the display view for a single product.
func Project(p domain.Product) domain.ProductView {
	v := domain.ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		ImageURL:        p.ImageURL,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		Category:        p.Category,
		ShopeeURL:       p.ShopeeURL,
		ShopeeProductID: p.ShopeeProductID,
		IsActive:        p.IsActive,
		Tags:            p.Tags,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,

		FormattedPrice:     FormatPrice(p.Price),
		DiscountPercentage: DiscountPercentage(p.Price, p.OriginalPrice),
	}
	if p.OriginalPrice != nil {
		formatted := FormatPrice(*p.OriginalPrice)
		v.FormattedOriginalPrice = &formatted
	}
	return v
}

// ProjectAll projects a slice in storage order.
func ProjectAll(products []domain.Product) []domain.ProductView {
	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, Project(p))
	}
	return views
}
