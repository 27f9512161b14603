package usecase

import (
	"context"
	"sync"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
)

// SiteLookup is the slice of the controller API the cache needs.
type SiteLookup interface {
	GetSiteByID(ctx context.Context, siteID string) (entity.Site, error)
}

// SiteNameCache memoizes site display names. It is owned by whoever creates it
// (normally one per CLI invocation) and passed to the components that need it.
type SiteNameCache struct {
	lookup SiteLookup
	mu     sync.RWMutex
	names  map[string]string
}

// NewSiteNameCache cria um cache vazio que resolve nomes através de lookup.
func NewSiteNameCache(lookup SiteLookup) *SiteNameCache {
	return &SiteNameCache{
		lookup: lookup,
		names:  make(map[string]string),
	}
}

// Resolve returns the display name of siteID. Lookup failures fall back to the
// id itself and are not cached, so a later call can still succeed.
func (c *SiteNameCache) Resolve(ctx context.Context, siteID string) string {
	if c == nil {
		return siteID
	}

	c.mu.RLock()
	name, ok := c.names[siteID]
	c.mu.RUnlock()
	if ok {
		return name
	}

	if c.lookup == nil {
		return siteID
	}

	site, err := c.lookup.GetSiteByID(ctx, siteID)
	if err != nil || site.Name == "" {
		return siteID
	}

	c.mu.Lock()
	c.names[siteID] = site.Name
	c.mu.Unlock()

	return site.Name
}

// Prime seeds the cache from an already fetched site list.
func (c *SiteNameCache) Prime(sites []entity.Site) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range sites {
		if s.ID != "" && s.Name != "" {
			c.names[s.ID] = s.Name
		}
	}
}
