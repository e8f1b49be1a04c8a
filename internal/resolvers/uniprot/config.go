package uniprot

import (
	"time"

	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
)

// Config keys consumed from the config store.
const (
	ConfigKeyBaseURL           = "uniprot.base_url"
	ConfigKeyTimeoutSeconds    = "uniprot.timeout_seconds"
	ConfigKeyBatchSize         = "uniprot.batch_size"
	ConfigKeyMaxConcurrency    = "uniprot.max_concurrency"
	ConfigKeyCacheCapacity     = "uniprot.cache_capacity"
	ConfigKeyRequestsPerSecond = "uniprot.requests_per_second"
)

// Defaults.
const (
	// DefaultBaseURL is the UniProtKB REST search endpoint root.
	DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultBatchSize is the maximum accessions OR-combined into one
	// query. The registry caps query length; the batch size exists to
	// stay under it.
	DefaultBatchSize = 50

	// DefaultConcurrency is the maximum simultaneous upstream requests.
	DefaultConcurrency = 5

	// DefaultCacheCapacity is the default result cache bound.
	DefaultCacheCapacity = 10000

	// DefaultRequestsPerSecond is the proactive politeness rate.
	DefaultRequestsPerSecond = 2.0

	// DefaultPageSize is the page-size parameter sent with each search.
	DefaultPageSize = 500
)

// Config holds the resolver configuration. All values are externally
// supplied; zero values fall back to the defaults above.
type Config struct {
	// BaseURL is the registry search endpoint root.
	BaseURL string

	// Timeout bounds each upstream request.
	Timeout time.Duration

	// BatchSize is the maximum accessions per upstream query.
	BatchSize int

	// Concurrency bounds simultaneous upstream requests.
	Concurrency int

	// CacheCapacity bounds the result cache.
	CacheCapacity int

	// RequestsPerSecond throttles upstream requests.
	RequestsPerSecond float64
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		BatchSize:         DefaultBatchSize,
		Concurrency:       DefaultConcurrency,
		CacheCapacity:     DefaultCacheCapacity,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}
}

// withDefaults fills unset fields with their default values.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = DefaultCacheCapacity
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = DefaultRequestsPerSecond
	}
	return c
}

// ConfigFromStore reads resolver configuration from a config store.
// Missing keys stay zero and fall back to defaults.
func ConfigFromStore(store driven.ConfigStore) Config {
	return Config{
		BaseURL:           store.GetString(ConfigKeyBaseURL),
		Timeout:           time.Duration(store.GetInt(ConfigKeyTimeoutSeconds)) * time.Second,
		BatchSize:         store.GetInt(ConfigKeyBatchSize),
		Concurrency:       store.GetInt(ConfigKeyMaxConcurrency),
		CacheCapacity:     store.GetInt(ConfigKeyCacheCapacity),
		RequestsPerSecond: store.GetFloat(ConfigKeyRequestsPerSecond),
	}
}

// RequiredConfigKeys returns the config keys the resolver reads.
// Every key has a default, so none are strictly mandatory; the list is
// used by the CLI for config introspection.
func RequiredConfigKeys() []string {
	return []string{
		ConfigKeyBaseURL,
		ConfigKeyTimeoutSeconds,
		ConfigKeyBatchSize,
		ConfigKeyMaxConcurrency,
		ConfigKeyCacheCapacity,
		ConfigKeyRequestsPerSecond,
	}
}
