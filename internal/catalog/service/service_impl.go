package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tokopilih/tokopilih/internal/cache"
	"github.com/tokopilih/tokopilih/internal/catalog/domain"
	"github.com/tokopilih/tokopilih/internal/catalog/view"
	"github.com/tokopilih/tokopilih/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listBasePath = "/products"

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Repo      domain.Repository
	HomeCache *cache.HomeCache `optional:"true"`
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	homeCache *cache.HomeCache
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("catalog.service"),
		repo:      p.Repo,
		homeCache: p.HomeCache,
	}
}

func (s *Service) Home(ctx context.Context) (*domain.HomePayload, error) {
	if cached, ok := s.homeCache.Get(); ok {
		return cached, nil
	}

	featured, err := s.repo.ListFeatured(ctx, s.db, domain.FeaturedLimit)
	if err != nil {
		return nil, err
	}
	fresh, err := s.repo.ListNew(ctx, s.db, domain.NewLimit)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.CategoryCounts(ctx, s.db, domain.CategoryLimit)
	if err != nil {
		return nil, err
	}
	discounts, err := s.repo.ListTopDiscounts(ctx, s.db, domain.DiscountLimit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountActive(ctx, s.db)
	if err != nil {
		return nil, err
	}

	payload := &domain.HomePayload{
		FeaturedProducts: view.ProjectAll(featured),
		NewProducts:      view.ProjectAll(fresh),
		Categories:       categories,
		DiscountProducts: view.ProjectAll(discounts),
		TotalProducts:    total,
	}
	s.homeCache.Set(payload)
	return payload, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListPayload, error) {
	req = normalizeListRequest(req)

	filter := domain.ListFilter{
		Category: req.Category,
		Search:   req.Search,
	}
	sort := domain.Sort{
		Field: req.Sort,
		Desc:  req.Order == domain.OrderDesc,
	}
	page := pagination.Request{Page: req.Page}.Normalize(domain.PerPage)
	req.Page = page.Page

	items, total, err := s.repo.ListActive(ctx, s.db, filter, sort, page)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.DistinctCategories(ctx, s.db)
	if err != nil {
		return nil, err
	}

	lastPage := pagination.LastPage(total, domain.PerPage)

	return &domain.ListPayload{
		Products: domain.PagedProducts{
			Data:        view.ProjectAll(items),
			CurrentPage: req.Page,
			LastPage:    lastPage,
			PerPage:     domain.PerPage,
			Total:       total,
			Links:       pagination.BuildLinks(listBasePath, echoQuery(req), req.Page, lastPage),
		},
		Categories: categories,
		Filters: domain.Filters{
			Category: optional(req.Category),
			Search:   optional(req.Search),
			Sort:     req.Sort,
			Order:    req.Order,
		},
	}, nil
}

func (s *Service) Detail(ctx context.Context, id string) (*domain.DetailPayload, error) {
	productID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	product, err := s.repo.FindActiveByID(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	related, err := s.repo.ListRelated(ctx, s.db, product.Category, product.ID, domain.RelatedLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DetailPayload{
		Product:         view.Project(*product),
		RelatedProducts: view.ProjectAll(related),
	}, nil
}

// normalizeListRequest resolves the raw sort parameters once: unknown sort
// fields fall back to created_at/desc. Page clamping happens in pagination.
func normalizeListRequest(req domain.ListRequest) domain.ListRequest {
	req.Category = strings.TrimSpace(req.Category)
	req.Search = strings.TrimSpace(req.Search)

	switch strings.ToLower(strings.TrimSpace(req.Sort)) {
	case domain.SortName:
		req.Sort = domain.SortName
	case domain.SortPrice:
		req.Sort = domain.SortPrice
	case domain.SortRating:
		req.Sort = domain.SortRating
	case domain.SortCreatedAt:
		req.Sort = domain.SortCreatedAt
	default:
		req.Sort = domain.SortCreatedAt
	}

	switch strings.ToLower(strings.TrimSpace(req.Order)) {
	case domain.OrderAsc:
		req.Order = domain.OrderAsc
	default:
		req.Order = domain.OrderDesc
	}
	return req
}

func echoQuery(req domain.ListRequest) url.Values {
	values := url.Values{}
	if req.Category != "" {
		values.Set("category", req.Category)
	}
	if req.Search != "" {
		values.Set("search", req.Search)
	}
	values.Set("sort", req.Sort)
	values.Set("order", req.Order)
	return values
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
