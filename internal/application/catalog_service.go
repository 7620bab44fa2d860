package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	repo "github.com/draperhq/storefront-api/internal/domain/repository"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// CatalogService owns the product catalog: public reads (Redis-cached,
// Elasticsearch-searchable) and admin writes, which keep cache and index in
// step with the store of record.
type CatalogService struct {
	Repo      repo.ProductRepository
	Redis     *redis.Client
	CacheTTL  time.Duration
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func catalogCacheKey(category string) string {
	if category == "" {
		return "catalog:products:all"
	}
	return "catalog:products:" + category
}

// List returns products, optionally filtered to one catalog section. Results
// are cached briefly; admin writes invalidate the cache.
func (s *CatalogService) List(ctx context.Context, category string) ([]entity.Product, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, apperr.ErrValidation)
	}

	key := catalogCacheKey(category)
	if s.Redis != nil {
		var cached []entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	products, err := s.Repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, products, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("catalog cache write failed")
		}
	}
	return products, nil
}

// Get returns one product or NotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product: %w", apperr.ErrNotFound)
	}
	return p, nil
}

type ProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Images      []string
	Category    string
	Stock       int
}

func (in *ProductInput) validate() error {
	if in.PriceCents < 0 {
		return fmt.Errorf("price must be non-negative: %w", apperr.ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("stock must be non-negative: %w", apperr.ErrValidation)
	}
	if !entity.ValidCategory(in.Category) {
		return fmt.Errorf("unknown category %q: %w", in.Category, apperr.ErrValidation)
	}
	return nil
}

// Create adds a catalog entry (admin).
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Images:      in.Images,
		Category:    in.Category,
		Stock:       in.Stock,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, p, false)
	return p, nil
}

// Update replaces a catalog entry's attributes (admin).
func (s *CatalogService) Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.PriceCents = in.PriceCents
	p.Images = in.Images
	p.Category = in.Category
	p.Stock = in.Stock
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, p, false)
	return p, nil
}

// Delete removes a catalog entry (admin).
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, p, true)
	return nil
}

// UploadImage stores a product image in GCS and appends its public URL.
func (s *CatalogService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (*entity.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, fmt.Errorf("object storage not configured: %w", apperr.ErrDependency)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", id, helpers.NewID()+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("image upload: %w", apperr.ErrDependency)
	}

	p.Images = append(p.Images, url)
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, p, false)
	return p, nil
}

// Search queries the Elasticsearch products index over name, description,
// and category.
func (s *CatalogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// afterWrite invalidates cached listings and keeps the search index in step.
// Both are best-effort; the store of record has already committed.
func (s *CatalogService) afterWrite(ctx context.Context, p *entity.Product, deleted bool) {
	if s.Redis != nil {
		keys := []string{catalogCacheKey(""), catalogCacheKey(p.Category)}
		if err := s.Redis.Del(ctx, keys...).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("catalog cache invalidation failed")
		}
	}
	if deleted {
		s.deindexProduct(ctx, p.ID)
	} else {
		s.indexProduct(ctx, p)
	}
}

func (s *CatalogService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price_cents": p.PriceCents,
		"in_stock":    p.InStock,
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

func (s *CatalogService) deindexProduct(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
