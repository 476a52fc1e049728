package domain

import (
	"context"
	"errors"
	"time"

	"github.com/tokopilih/tokopilih/pkg/db/pagination"
	"gorm.io/datatypes"
)

// Page-section limits and the fixed listing page size.
const (
	PerPage       = 12
	FeaturedLimit = 8
	NewLimit      = 4
	CategoryLimit = 8
	DiscountLimit = 6
	RelatedLimit  = 4
)

// Allowed listing sort fields. Anything else normalizes to the default.
const (
	SortName      = "name"
	SortPrice     = "price"
	SortRating    = "rating"
	SortCreatedAt = "created_at"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

var ErrNotFound = errors.New("not_found")

// Service assembles the three page payloads.
type Service interface {
	Home(ctx context.Context) (*HomePayload, error)
	List(ctx context.Context, req ListRequest) (*ListPayload, error)
	Detail(ctx context.Context, id string) (*DetailPayload, error)
}

// ListRequest carries raw listing parameters; the service normalizes them.
type ListRequest struct {
	Category string
	Search   string
	Sort     string
	Order    string
	Page     int
}

// Filters echoes the resolved listing parameters so the page renderer can
// reconstruct its UI state. Category and Search stay null when unset.
type Filters struct {
	Category *string `json:"category"`
	Search   *string `json:"search"`
	Sort     string  `json:"sort"`
	Order    string  `json:"order"`
}

// ProductView is a Product plus derived display fields.
type ProductView struct {
	ID              int64                       `json:"id"`
	Name            string                      `json:"name"`
	Description     *string                     `json:"description,omitempty"`
	Price           float64                     `json:"price"`
	OriginalPrice   *float64                    `json:"original_price,omitempty"`
	ImageURL        string                      `json:"image_url"`
	Rating          float64                     `json:"rating"`
	ReviewCount     int                         `json:"review_count"`
	Category        string                      `json:"category"`
	ShopeeURL       string                      `json:"shopee_url"`
	ShopeeProductID string                      `json:"shopee_product_id"`
	IsActive        bool                        `json:"is_active"`
	Tags            datatypes.JSONSlice[string] `json:"tags,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`

	FormattedPrice         string  `json:"formatted_price"`
	FormattedOriginalPrice *string `json:"formatted_original_price,omitempty"`
	DiscountPercentage     *int    `json:"discount_percentage,omitempty"`
}

// PagedProducts mirrors the paginator shape the page renderer consumes.
type PagedProducts struct {
	Data        []ProductView     `json:"data"`
	CurrentPage int               `json:"current_page"`
	LastPage    int               `json:"last_page"`
	PerPage     int               `json:"per_page"`
	Total       int64             `json:"total"`
	Links       []pagination.Link `json:"links"`
}

type HomePayload struct {
	FeaturedProducts []ProductView   `json:"featuredProducts"`
	NewProducts      []ProductView   `json:"newProducts"`
	Categories       []CategoryCount `json:"categories"`
	DiscountProducts []ProductView   `json:"discountProducts"`
	TotalProducts    int64           `json:"totalProducts"`
}

type ListPayload struct {
	Products   PagedProducts `json:"products"`
	Categories []string      `json:"categories"`
	Filters    Filters       `json:"filters"`
}

type DetailPayload struct {
	Product         ProductView   `json:"product"`
	RelatedProducts []ProductView `json:"relatedProducts"`
}
