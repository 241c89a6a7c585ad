package sayf

import (
	"errors"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config describes a bot deployment.
//
//	truncation_limit: 500
//	directory:
//	  driver: postgres
//	  dsn: postgres://bot@db/chat?sslmode=disable
//	cache:
//	  ttl: 5m
//	  negative_ttl: 30s
//	  max_entries: 1000
type Config struct {
	TruncationLimit *int            `yaml:"truncation_limit"`
	Directory       DirectoryConfig `yaml:"directory"`
	Cache           CacheSettings   `yaml:"cache"`
}

// DirectoryConfig selects the name directory.
type DirectoryConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// Rooms is an inline roster for the memory driver.
	Rooms []RosterRoom `yaml:"rooms"`
}

// CacheSettings configure the resolver cache.
type CacheSettings struct {
	Disabled    bool           `yaml:"disabled"`
	TTL         time.Duration  `yaml:"ttl"`
	NegativeTTL *time.Duration `yaml:"negative_ttl"`
	MaxEntries  int            `yaml:"max_entries"`
}

// DefaultConfig returns a config using an empty memory directory.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, "", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TruncationLimit == nil {
		limit := DefaultTruncationLimit
		c.TruncationLimit = &limit
	}
	if c.Directory.Driver == "" {
		c.Directory.Driver = DirectoryDriverMemory
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.NegativeTTL == nil {
		ttl := DefaultCacheNegativeTTL
		c.Cache.NegativeTTL = &ttl
	}
	if c.Cache.MaxEntries == 0 {
		c.Cache.MaxEntries = DefaultCacheMaxEntries
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.TruncationLimit != nil && *c.TruncationLimit < 0 {
		return NewConfigFieldError("truncation_limit", strconv.Itoa(*c.TruncationLimit))
	}

	switch c.Directory.Driver {
	case DirectoryDriverMemory:
	case DirectoryDriverFile, DirectoryDriverPostgres:
		if c.Directory.DSN == "" {
			return NewConfigFieldError("directory.dsn", "")
		}
	default:
		if !driverRegistered(c.Directory.Driver) {
			return NewConfigFieldError("directory.driver", c.Directory.Driver)
		}
	}
	if len(c.Directory.Rooms) > 0 && c.Directory.Driver != DirectoryDriverMemory {
		return NewConfigFieldError("directory.rooms", c.Directory.Driver)
	}

	if c.Cache.TTL < 0 {
		return NewConfigFieldError("cache.ttl", c.Cache.TTL.String())
	}
	if c.Cache.NegativeTTL != nil && *c.Cache.NegativeTTL < 0 {
		return NewConfigFieldError("cache.negative_ttl", c.Cache.NegativeTTL.String())
	}
	if c.Cache.MaxEntries < 0 {
		return NewConfigFieldError("cache.max_entries", strconv.Itoa(c.Cache.MaxEntries))
	}
	return nil
}

// OpenDirectory opens the configured directory. Inline rooms populate a
// memory directory.
func (c *Config) OpenDirectory() (Directory, error) {
	if c.Directory.Driver == DirectoryDriverMemory && len(c.Directory.Rooms) > 0 {
		return Roster{Rooms: c.Directory.Rooms}.Directory()
	}
	return OpenDirectory(c.Directory.Driver, c.Directory.DSN)
}

// Open builds the resolver chain and a Composer from the config. The returned
// Directory owns the underlying connections and must be closed by the caller.
func (c *Config) Open(logger *zap.Logger, opts ...Option) (*Composer, Directory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := c.OpenDirectory()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug(LogMsgDirectoryOpened, zap.String(LogFieldDriver, c.Directory.Driver))

	var resolver Directory = dir
	if !c.Cache.Disabled {
		cacheConfig := CacheConfig{
			TTL:        c.Cache.TTL,
			MaxEntries: c.Cache.MaxEntries,
			Logger:     logger,
		}
		if c.Cache.NegativeTTL != nil {
			cacheConfig.NegativeTTL = *c.Cache.NegativeTTL
		}
		resolver = NewCachedResolver(dir, cacheConfig)
	}

	limit := DefaultTruncationLimit
	if c.TruncationLimit != nil {
		limit = *c.TruncationLimit
	}
	base := []Option{
		WithTruncationLimit(limit),
		WithResolver(resolver),
		WithLogger(logger),
	}
	composer, err := New(append(base, opts...)...)
	if err != nil {
		if closeErr := resolver.Close(); closeErr != nil {
			return nil, nil, errors.Join(err, closeErr)
		}
		return nil, nil, err
	}
	return composer, resolver, nil
}

func driverRegistered(name string) bool {
	for _, d := range ListDirectoryDrivers() {
		if d == name {
			return true
		}
	}
	return false
}
