// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	OMDb      OMDbConfig      `toml:"omdb"`
	TMDB      TMDBConfig      `toml:"tmdb"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Cache     CacheConfig     `toml:"cache"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file,omitempty"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type OMDbConfig struct {
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url,omitempty"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

type TMDBConfig struct {
	APIKey       string        `toml:"api_key"`
	BaseURL      string        `toml:"base_url,omitempty"`
	FindCacheTTL time.Duration `toml:"find_cache_ttl"`
}

// CatalogConfig controls which titles make up the browse catalog.
type CatalogConfig struct {
	IDs          []string `toml:"ids,omitempty"`
	Concurrency  int      `toml:"concurrency"`
	RelatedCount int      `toml:"related_count"`
	Fallback     bool     `toml:"fallback"`
}

// CacheConfig holds the metadata cache TTLs. A zero TTL disables caching
// for that kind of entry.
type CacheConfig struct {
	ContentTTL    time.Duration `toml:"content_ttl"`
	SearchTTL     time.Duration `toml:"search_ttl"`
	PruneInterval time.Duration `toml:"prune_interval"`
}

// RateLimitConfig throttles inbound API requests per client address.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Defaults.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8484
	DefaultDatabasePath = "./data/frameflux.db"
)

// Load reads, substitutes, parses, and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	errs := cfg.Validate()
	if len(missing) > 0 || len(errs) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation parses the file and applies defaults but skips
// validation and ignores unresolved variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, missing, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults(md)

	return &cfg, missing, nil
}

func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if !md.IsDefined("omdb", "requests_per_second") {
		c.OMDb.RequestsPerSecond = 5
	}
	if !md.IsDefined("tmdb", "find_cache_ttl") {
		c.TMDB.FindCacheTTL = 24 * time.Hour
	}
	if c.Catalog.Concurrency == 0 {
		c.Catalog.Concurrency = 8
	}
	if c.Catalog.RelatedCount == 0 {
		c.Catalog.RelatedCount = 10
	}
	if !md.IsDefined("catalog", "fallback") {
		c.Catalog.Fallback = true
	}
	// Zero TTLs are meaningful, so only absent keys get defaults.
	if !md.IsDefined("cache", "content_ttl") {
		c.Cache.ContentTTL = 6 * time.Hour
	}
	if !md.IsDefined("cache", "search_ttl") {
		c.Cache.SearchTTL = time.Hour
	}
	if !md.IsDefined("cache", "prune_interval") {
		c.Cache.PruneInterval = time.Hour
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
}

// Addr is the host:port the API server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references. Variables that are
// unset and have no default are left in place and returned in missing;
// ${VAR:?message} entries are reported as "VAR: message".
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		name, op, arg := sub[1], sub[2], sub[3]

		// An empty value counts as unset for :- and :?.
		if value, ok := os.LookupEnv(name); ok && (value != "" || op == "") {
			return value
		}
		switch op {
		case ":-":
			return arg
		case ":?":
			missing = append(missing, name+": "+strings.TrimSpace(arg))
		default:
			missing = append(missing, name)
		}
		return match
	})
	return out, missing
}
