package service

import (
	"context"
	"math"
	"slices"

	"catalog_service/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 12
)

type CatalogService struct {
	repo         repository.Catalog
	defaultLimit int
	maxLimit     int // 0 disables clamping
}

func NewCatalogService(repo repository.Catalog, defLimit, maxLimit int) *CatalogService {
	if defLimit <= 0 {
		defLimit = defaultLimit
	}
	if maxLimit < 0 {
		maxLimit = 0
	}
	return &CatalogService{repo: repo, defaultLimit: defLimit, maxLimit: maxLimit}
}

// normalizeQuery applies defaults and the limit ceiling; negative values are rejected.
func (s *CatalogService) normalizeQuery(q CatalogQuery) (CatalogQuery, error) {
	if q.Page < 0 || q.Limit < 0 {
		return CatalogQuery{}, ErrInvalidPaging
	}
	if q.Page == 0 {
		q.Page = defaultPage
	}
	if q.Limit == 0 {
		q.Limit = s.defaultLimit
	}
	if s.maxLimit > 0 && q.Limit > s.maxLimit {
		q.Limit = s.maxLimit
	}
	return q, nil
}

// List returns one page of items, newest position first. Pages past the end
// yield no items but still report total and totalPages.
func (s *CatalogService) List(ctx context.Context, q CatalogQuery) (CatalogPage, error) {
	q, err := s.normalizeQuery(q)
	if err != nil {
		return CatalogPage{}, err
	}

	page, err := s.repo.Page(ctx, repository.ItemFilter{
		Tag:    q.Tag,
		Limit:  q.Limit,
		Offset: pageOffset(q.Page, q.Limit),
	})
	if err != nil {
		return CatalogPage{}, err
	}

	entries := make([]CatalogEntry, 0, len(page.Items))
	for _, item := range page.Items {
		tags := item.Tags
		if tags == nil {
			tags = []string{}
		}
		entries = append(entries, CatalogEntry{
			ID:     item.ID,
			Title:  item.Title,
			Tags:   tags,
			Images: item.Images(),
			Link:   item.ExternalLink,
		})
	}

	allTags := slices.Clone(page.AllTags)
	if allTags == nil {
		allTags = []string{}
	}
	slices.Sort(allTags)

	return CatalogPage{
		Items:      entries,
		Total:      page.Total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages(page.Total, q.Limit),
		AllTags:    slices.Compact(allTags),
	}, nil
}

// pageOffset is (page-1)*limit, saturating instead of overflowing.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
