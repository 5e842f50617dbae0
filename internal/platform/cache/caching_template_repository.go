// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/feature/actions/usecase"
)

// CachingTemplateRepository decorates a TemplateRepository with Redis
// caching for the full-catalog read, which backs a public endpoint and is
// by far the hottest query. Every mutation invalidates the cached catalog.
type CachingTemplateRepository struct {
	inner     usecase.TemplateRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator still satisfies the interface.
var _ usecase.TemplateRepository = (*CachingTemplateRepository)(nil)

// NewCachingTemplateRepository decorates a TemplateRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "templates". A nil Redis client turns the decorator into a pass-through.
func NewCachingTemplateRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TemplateRepository, namespace string) *CachingTemplateRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "templates"
	}
	return &CachingTemplateRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingTemplateRepository) catalogKey() string {
	return c.namespace + ":all"
}

// invalidate drops the cached catalog. Best effort: a failed delete only
// means a stale read until the TTL runs out.
func (c *CachingTemplateRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.catalogKey()).Err()
}

// FindAll retrieves the catalog, checking the cache first.
func (c *CachingTemplateRepository) FindAll(ctx context.Context) ([]*entity.ActionTemplate, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.catalogKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []*entity.ActionTemplate
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts a template and invalidates the cached catalog.
func (c *CachingTemplateRepository) Create(ctx context.Context, tpl *entity.ActionTemplate) error {
	if err := c.inner.Create(ctx, tpl); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update saves a template and invalidates the cached catalog.
func (c *CachingTemplateRepository) Update(ctx context.Context, tpl *entity.ActionTemplate) error {
	if err := c.inner.Update(ctx, tpl); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a template and invalidates the cached catalog.
func (c *CachingTemplateRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// CreateBatch inserts templates and invalidates the cached catalog.
func (c *CachingTemplateRepository) CreateBatch(ctx context.Context, tpls []*entity.ActionTemplate) error {
	if err := c.inner.CreateBatch(ctx, tpls); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID passes through to the inner repository.
func (c *CachingTemplateRepository) FindByID(ctx context.Context, id uint) (*entity.ActionTemplate, error) {
	return c.inner.FindByID(ctx, id)
}

// FindDefaults passes through to the inner repository.
func (c *CachingTemplateRepository) FindDefaults(ctx context.Context) ([]*entity.ActionTemplate, error) {
	return c.inner.FindDefaults(ctx)
}

// Count passes through to the inner repository.
func (c *CachingTemplateRepository) Count(ctx context.Context) (int64, error) {
	return c.inner.Count(ctx)
}
