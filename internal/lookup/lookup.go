// File: internal/lookup/lookup.go
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Grefendor/drinks/internal/cache"
)

const (
	DefaultBaseURL = "https://world.openfoodfacts.org"
	DefaultTimeout = 5 * time.Second
	cacheTTL       = 24 * time.Hour
	cachePrefix    = "lookup:"
)

var ErrNotFound = errors.New("lookup: product not found")

// Client 依條碼向 OpenFoodFacts 查詢商品名稱，查詢失敗不影響帳本
type Client struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
}

type Option func(*Client)

// WithCache 以 Redis 快取查詢結果 24 小時
func WithCache(c cache.Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

func WithHTTPClient(h *http.Client) Option {
	return func(cl *Client) { cl.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
	} `json:"product"`
}

// ProductName 回傳商品名稱；查無資料回傳 ErrNotFound
func (c *Client) ProductName(ctx context.Context, barcode string) (string, error) {
	if barcode == "" {
		return "", ErrNotFound
	}

	if c.cache != nil {
		name, err := c.cache.Get(ctx, cachePrefix+barcode).Result()
		// redis.Nil 或 Redis 異常時改查遠端
		if err == nil && name != "" {
			return name, nil
		}
	}

	name, err := c.fetch(ctx, barcode)
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		// 快取寫入失敗不影響結果
		_ = c.cache.Set(ctx, cachePrefix+barcode, name, cacheTTL).Err()
	}
	return name, nil
}

func (c *Client) fetch(ctx context.Context, barcode string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lookup: unexpected status %d", resp.StatusCode)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("lookup: decode: %w", err)
	}
	if body.Status != 1 || body.Product.ProductName == "" {
		return "", ErrNotFound
	}
	return body.Product.ProductName, nil
}
