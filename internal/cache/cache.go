package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cedarbrook-wellness/content-service/internal/storage"
	"github.com/cedarbrook-wellness/content-service/internal/types"
)

// CacheService wraps storage with Redis caching. The public site reads
// content records on every page view; uploads and edits invalidate.
type CacheService struct {
	storage storage.Storage
	redis   *redis.Client
}

// NewCacheService creates a new cache service
func NewCacheService(storage storage.Storage, redisClient *redis.Client) *CacheService {
	return &CacheService{
		storage: storage,
		redis:   redisClient,
	}
}

// Cache key patterns
const (
	ContentKey = "content:%s:%s" // content:section:key
	SectionKey = "section:%s"    // section:section
)

// Cache durations
const (
	ContentCacheDuration = 10 * time.Minute // Individual content blocks
	SectionCacheDuration = 2 * time.Minute  // Whole-section listings
)

// GetContentByKey returns the cached record or fetches from DB
func (c *CacheService) GetContentByKey(section, key string) (types.SiteContent, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf(ContentKey, section, key)

	// Try cache first
	cached, err := c.redis.Get(ctx, cacheKey).Result()
	if err == nil {
		var content types.SiteContent
		if err := json.Unmarshal([]byte(cached), &content); err == nil {
			return content, nil
		}
	}

	// Cache miss - fetch from database
	content, err := c.storage.GetContentByKey(section, key)
	if err != nil {
		return content, err
	}

	// Cache the result
	data, _ := json.Marshal(content)
	c.redis.Set(ctx, cacheKey, data, ContentCacheDuration)

	return content, nil
}

// GetContentBySection returns the cached section listing or fetches from DB
func (c *CacheService) GetContentBySection(section string) ([]types.SiteContent, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf(SectionKey, section)

	cached, err := c.redis.Get(ctx, cacheKey).Result()
	if err == nil {
		var contents []types.SiteContent
		if err := json.Unmarshal([]byte(cached), &contents); err == nil {
			return contents, nil
		}
	}

	contents, err := c.storage.GetContentBySection(section)
	if err != nil {
		return nil, err
	}

	data, _ := json.Marshal(contents)
	c.redis.Set(ctx, cacheKey, data, SectionCacheDuration)

	return contents, nil
}

// InvalidateContent clears the caches holding one record
func (c *CacheService) InvalidateContent(ctx context.Context, section, key string) {
	keys := []string{
		fmt.Sprintf(ContentKey, section, key),
		fmt.Sprintf(SectionKey, section),
	}

	for _, k := range keys {
		c.redis.Del(ctx, k)
	}
}

func (c *CacheService) UpdateContentText(section, key string, req types.ContentUpdateRequest) (types.SiteContent, error) {
	content, err := c.storage.UpdateContentText(section, key, req)
	if err != nil {
		return content, err
	}

	c.InvalidateContent(context.Background(), section, key)

	return content, nil
}

func (c *CacheService) UpsertContentAsset(section, key, title, body, field, assetURL string) (types.SiteContent, error) {
	content, err := c.storage.UpsertContentAsset(section, key, title, body, field, assetURL)
	if err != nil {
		return content, err
	}

	c.InvalidateContent(context.Background(), section, key)

	return content, nil
}

// Methods to pass through to storage (implement storage.Storage interface)
func (c *CacheService) CreateImport(importID, filename string, weekOf time.Time, processed, analyzed int) error {
	return c.storage.CreateImport(importID, filename, weekOf, processed, analyzed)
}

func (c *CacheService) CreateImportRows(importID string, rows []types.SalesRecord) error {
	return c.storage.CreateImportRows(importID, rows)
}

func (c *CacheService) GetImport(importID string) (types.CSVImport, error) {
	return c.storage.GetImport(importID)
}

func (c *CacheService) CreateAdmin(email, password string) (string, error) {
	return c.storage.CreateAdmin(email, password)
}

func (c *CacheService) GetAdminByEmail(email string) (string, string, error) {
	return c.storage.GetAdminByEmail(email)
}
