package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yuxishi/aws-quota-checker/internal/model"
)

const maxReports = 128

// Cache keeps audit reports for a fixed TTL.
type Cache struct {
	reports *expirable.LRU[string, *model.Report]
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		reports: expirable.NewLRU[string, *model.Report](maxReports, nil, ttl),
	}
}

// Key builds a cache key from the parts of a request.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

func (c *Cache) Set(key string, report *model.Report) {
	c.reports.Add(key, report)
}

func (c *Cache) Get(key string) (*model.Report, bool) {
	return c.reports.Get(key)
}

func (c *Cache) Delete(key string) {
	c.reports.Remove(key)
}

func (c *Cache) Clear() {
	c.reports.Purge()
}

func (c *Cache) Len() int {
	return c.reports.Len()
}
