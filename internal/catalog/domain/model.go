package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Well-known tags used by the home page sections. Tags are free-form labels;
// these three just have dedicated queries.
const (
	TagTrending   = "trending"
	TagBestseller = "bestseller"
	TagNew        = "new"
)

// Product is a catalog row. Prices are IDR; original_price is only a discount
// signal when strictly greater than price.
type Product struct {
	ID              int64                       `json:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" gorm:"type:text;not null;index"`
	Description     *string                     `json:"description,omitempty" gorm:"type:text"`
	Price           float64                     `json:"price" gorm:"type:numeric(12,2);not null"`
	OriginalPrice   *float64                    `json:"original_price,omitempty" gorm:"type:numeric(12,2)"`
	ImageURL        string                      `json:"image_url" gorm:"type:text;not null"`
	Rating          float64                     `json:"rating" gorm:"type:numeric(2,1);not null;default:0"`
	ReviewCount     int                         `json:"review_count" gorm:"not null;default:0"`
	Category        string                      `json:"category" gorm:"type:text;not null;index"`
	ShopeeURL       string                      `json:"shopee_url" gorm:"type:text;not null"`
	ShopeeProductID string                      `json:"shopee_product_id" gorm:"type:text;not null;uniqueIndex"`
	// No gorm default here: a default tag makes GORM drop the zero value on
	// INSERT, silently storing inactive products as active. The column default
	// lives in the migration SQL instead.
	IsActive        bool                        `json:"is_active" gorm:"not null;index"`
	Tags            datatypes.JSONSlice[string] `json:"tags,omitempty"`
	CreatedAt       time.Time                   `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time                   `json:"updated_at" gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// HasTag reports exact-match tag membership.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CategoryCount is a per-request aggregate, never persisted.
type CategoryCount struct {
	Category     string `json:"category"`
	ProductCount int64  `json:"product_count"`
}
