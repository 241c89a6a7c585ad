package sayf

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CacheConfig configures a CachedResolver.
type CacheConfig struct {
	// TTL is how long a resolved name stays cached.
	// Default: 5 minutes.
	TTL time.Duration

	// NegativeTTL is how long a "nobody matches" answer stays cached.
	// Set to 0 to disable negative caching.
	NegativeTTL time.Duration

	// MaxEntries bounds the cache. The least recently used entry is evicted
	// when it is full.
	// Default: 1000.
	MaxEntries int

	// LookupTimeout bounds one call to the wrapped resolver. The call is
	// shared by every concurrent caller of the same name, so it does not
	// inherit any single caller's cancellation.
	// Default: 10 seconds.
	LookupTimeout time.Duration

	// Logger receives cache hit and miss events. Nil disables logging.
	Logger *zap.Logger
}

// DefaultCacheConfig returns the default caching configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:           DefaultCacheTTL,
		NegativeTTL:   DefaultCacheNegativeTTL,
		MaxEntries:    DefaultCacheMaxEntries,
		LookupTimeout: DefaultCacheLookupTimeout,
	}
}

// CachedResolver wraps a NameResolver with an in-memory cache.
// Concurrent lookups of the same text in the same room share one call to the
// wrapped resolver. Errors are never cached.
type CachedResolver struct {
	resolver NameResolver
	config   CacheConfig
	logger   *zap.Logger
	group    singleflight.Group
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*resolverEntry
}

type resolverEntry struct {
	key        string
	name       string
	found      bool
	cachedAt   time.Time
	accessedAt time.Time
}

type resolution struct {
	name  string
	found bool
}

// NewCachedResolver wraps resolver with caching.
func NewCachedResolver(resolver NameResolver, config CacheConfig) *CachedResolver {
	if config.TTL == 0 {
		config.TTL = DefaultCacheTTL
	}
	if config.MaxEntries == 0 {
		config.MaxEntries = DefaultCacheMaxEntries
	}
	if config.LookupTimeout == 0 {
		config.LookupTimeout = DefaultCacheLookupTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CachedResolver{
		resolver: resolver,
		config:   config,
		logger:   logger,
		now:      time.Now,
		entries:  make(map[string]*resolverEntry),
	}
}

// ResolvePingableName implements NameResolver.
func (c *CachedResolver) ResolvePingableName(ctx context.Context, room Room, text string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	key := room.String() + "\x00" + text
	if entry, ok := c.lookup(key); ok {
		c.logger.Debug(LogMsgCacheHit, zap.Stringer(LogFieldRoom, room), zap.Bool(LogFieldFound, entry.found))
		return entry.name, entry.found, nil
	}
	c.logger.Debug(LogMsgCacheMiss, zap.Stringer(LogFieldRoom, room))

	lookupCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(lookupCtx, c.config.LookupTimeout)
		defer cancel()

		name, found, err := c.resolver.ResolvePingableName(lookupCtx, room, text)
		if err != nil {
			return nil, err
		}
		c.store(key, name, found)
		return resolution{name: name, found: found}, nil
	})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", false, res.Err
		}
		r := res.Val.(resolution)
		return r.name, r.found, nil
	}
}

// Invalidate drops every cached answer for room.
func (c *CachedResolver) Invalidate(room Room) {
	prefix := room.String() + "\x00"

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll clears the cache.
func (c *CachedResolver) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*resolverEntry)
	c.mu.Unlock()
}

// Len returns the number of cached entries, expired ones included.
func (c *CachedResolver) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close closes the wrapped resolver when it is a Directory.
func (c *CachedResolver) Close() error {
	c.InvalidateAll()
	if dir, ok := c.resolver.(Directory); ok {
		return dir.Close()
	}
	return nil
}

func (c *CachedResolver) lookup(key string) (resolverEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return resolverEntry{}, false
	}
	now := c.now()
	if !c.isValid(entry, now) {
		delete(c.entries, key)
		return resolverEntry{}, false
	}
	entry.accessedAt = now
	return *entry, true
}

func (c *CachedResolver) store(key, name string, found bool) {
	if !found && c.config.NegativeTTL <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.config.MaxEntries {
		c.evictOldest()
	}
	now := c.now()
	c.entries[key] = &resolverEntry{
		key:        key,
		name:       name,
		found:      found,
		cachedAt:   now,
		accessedAt: now,
	}
}

func (c *CachedResolver) isValid(entry *resolverEntry, now time.Time) bool {
	ttl := c.config.TTL
	if !entry.found {
		ttl = c.config.NegativeTTL
	}
	return now.Sub(entry.cachedAt) < ttl
}

// evictOldest removes the least recently accessed entry.
// Caller must hold the lock.
func (c *CachedResolver) evictOldest() {
	var oldest *resolverEntry
	for _, entry := range c.entries {
		if oldest == nil || entry.accessedAt.Before(oldest.accessedAt) {
			oldest = entry
		}
	}
	if oldest != nil {
		delete(c.entries, oldest.key)
	}
}
