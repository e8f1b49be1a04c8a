package uniprot

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/linkage-labs/idmap-cli/internal/cache"
	"github.com/linkage-labs/idmap-cli/internal/core/domain"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
	"github.com/linkage-labs/idmap-cli/internal/logger"
)

// SourceName is the source database identifier for this resolver.
const SourceName = "uniprot"

// Ensure Resolver implements the interface.
var _ driven.IdentifierMapper = (*Resolver)(nil)

// Resolver is the UniProt resolution client facade. It composes the
// preprocessor, validator, batch lookup, classification, cache, and
// aggregator into the MapIdentifiers contract.
type Resolver struct {
	cfg      Config
	searcher driven.RegistrySearcher
	cache    driven.ResultCache
}

// New creates a resolver with its own HTTP client and result cache.
func New(cfg Config) *Resolver {
	cfg = cfg.withDefaults()
	return &Resolver{
		cfg:      cfg,
		searcher: NewClient(cfg),
		cache:    cache.New(cfg.CacheCapacity),
	}
}

// NewWithSearcher creates a resolver with an injected transport and cache.
// Used by tests and by callers composing a shared cache.
func NewWithSearcher(cfg Config, searcher driven.RegistrySearcher, resultCache driven.ResultCache) *Resolver {
	cfg = cfg.withDefaults()
	if resultCache == nil {
		resultCache = cache.New(cfg.CacheCapacity)
	}
	return &Resolver{
		cfg:      cfg,
		searcher: searcher,
		cache:    resultCache,
	}
}

// Source returns the source database identifier.
func (r *Resolver) Source() string {
	return SourceName
}

// RequiredConfigKeys returns the config keys this resolver reads.
func (r *Resolver) RequiredConfigKeys() []string {
	return RequiredConfigKeys()
}

// MapIdentifiers resolves raw identifiers to their current canonical
// accessions. The result map holds exactly the input identifiers as keys,
// even under total upstream failure; no error ever escapes.
func (r *Resolver) MapIdentifiers(ctx context.Context, identifiers []string, opts domain.MapOptions) map[string]domain.MappingResult {
	if len(identifiers) == 0 {
		return map[string]domain.MappingResult{}
	}

	runID := uuid.NewString()[:8]
	logger.Section("uniprot map " + runID)

	parts, atomics := Preprocess(identifiers)
	logger.Debug("[%s] %d inputs, %d atomic accessions", runID, len(identifiers), len(atomics))

	atomicResults := make(map[string]domain.MappingResult, len(atomics))

	// Validation short-circuit: malformed accessions resolve to obsolete
	// locally, without any upstream traffic.
	var valid []string
	for _, acc := range atomics {
		if verdict := Validate(acc); !verdict.Valid {
			logger.Debug("[%s] %q invalid (%s), classified obsolete", runID, acc, verdict.Reason)
			atomicResults[acc] = domain.ObsoleteResult()
			continue
		}
		valid = append(valid, acc)
	}

	// Cache partition. Bypass skips reads but not the later write-back.
	var pending []string
	if opts.BypassCache {
		pending = valid
	} else {
		for _, acc := range valid {
			if result, ok := r.cache.Get(acc); ok {
				atomicResults[acc] = result
				continue
			}
			pending = append(pending, acc)
		}
	}
	logger.Debug("[%s] %d cached, %d to resolve", runID, len(valid)-len(pending), len(pending))

	// Batched upstream resolution. Windows are dispatched in input order
	// and may complete out of order; the group join below is the
	// synchronisation point before aggregation. A plain errgroup (no
	// derived context) is used on purpose: one window's failure becomes an
	// error state for its own accessions and must not cancel siblings.
	if len(pending) > 0 {
		var (
			mu    sync.Mutex
			fresh = make(map[string]domain.MappingResult, len(pending))
		)
		var g errgroup.Group
		g.SetLimit(r.cfg.Concurrency)
		for _, window := range windows(pending, r.cfg.BatchSize) {
			g.Go(func() error {
				resolved := r.resolveWindow(ctx, runID, window)
				mu.Lock()
				for acc, result := range resolved {
					fresh[acc] = result
				}
				mu.Unlock()
				return nil
			})
		}
		g.Wait() //nolint:errcheck // workers never return errors

		// Transient failures are not written back; everything else is.
		writeBack := make(map[string]domain.MappingResult, len(fresh))
		for acc, result := range fresh {
			atomicResults[acc] = result
			if !strings.HasPrefix(result.State, domain.StateErrorPrefix) {
				writeBack[acc] = result
			}
		}
		r.cache.PutMany(writeBack)
	}

	return Aggregate(identifiers, parts, atomicResults)
}

// resolveWindow runs the two-phase lookup for one window. A transport
// failure in a phase converts to error states for exactly the accessions
// that phase was responsible for.
func (r *Resolver) resolveWindow(ctx context.Context, runID string, window []string) map[string]domain.MappingResult {
	secondaryEntries, err := r.searcher.SearchBySecondary(ctx, window)
	if err != nil {
		logger.Warn("[%s] secondary phase failed for %d accessions: %v", runID, len(window), err)
		return batchFailure(window, err)
	}

	results, remaining := classifySecondary(window, secondaryEntries)
	if len(remaining) == 0 {
		return results
	}

	primaryEntries, err := r.searcher.SearchByPrimary(ctx, remaining)
	if err != nil {
		logger.Warn("[%s] primary phase failed for %d accessions: %v", runID, len(remaining), err)
		for acc, result := range batchFailure(remaining, err) {
			results[acc] = result
		}
		return results
	}

	for acc, result := range classifyPrimary(remaining, primaryEntries) {
		results[acc] = result
	}
	return results
}

// batchFailure marks every accession of a failed call with the transport
// error detail.
func batchFailure(accessions []string, err error) map[string]domain.MappingResult {
	// "|" delimits composite details downstream, so it cannot appear in
	// the reason.
	reason := strings.ReplaceAll(err.Error(), detailSeparator, "/")
	state := domain.ErrDetailBatchPrefix + reason

	results := make(map[string]domain.MappingResult, len(accessions))
	for _, acc := range accessions {
		results[acc] = domain.ErrorResult(state)
	}
	return results
}

// ReverseMapIdentifiers maps current primary accessions to the historical
// accessions the registry lists for them. It uses the primary query shape
// only and does not consult the forward result cache.
func (r *Resolver) ReverseMapIdentifiers(ctx context.Context, identifiers []string) map[string]domain.MappingResult {
	results := make(map[string]domain.MappingResult, len(identifiers))
	if len(identifiers) == 0 {
		return results
	}

	// Result keys are the raw inputs; rawsFor maps each trimmed accession
	// back to every raw spelling it arrived under.
	var valid []string
	rawsFor := make(map[string][]string, len(identifiers))
	for _, raw := range identifiers {
		acc := strings.TrimSpace(raw)
		if verdict := Validate(acc); !verdict.Valid {
			results[raw] = domain.MappingResult{State: domain.StateReverseNotFound}
			continue
		}
		if _, ok := rawsFor[acc]; !ok {
			valid = append(valid, acc)
		}
		rawsFor[acc] = append(rawsFor[acc], raw)
	}

	assign := func(acc string, result domain.MappingResult) {
		for _, raw := range rawsFor[acc] {
			results[raw] = result
		}
	}

	for _, window := range windows(valid, r.cfg.BatchSize) {
		entries, err := r.searcher.SearchByPrimary(ctx, window)
		if err != nil {
			for acc, result := range batchFailure(window, err) {
				assign(acc, result)
			}
			continue
		}

		secondaries := make(map[string][]string, len(entries))
		for _, entry := range entries {
			if entry.PrimaryAccession != "" {
				secondaries[entry.PrimaryAccession] = entry.SecondaryAccessions
			}
		}
		for _, acc := range window {
			historical, found := secondaries[acc]
			if !found {
				assign(acc, domain.MappingResult{State: domain.StateReverseNotFound})
				continue
			}
			assign(acc, domain.MappingResult{
				CanonicalIDs: domain.SortedUnique(historical),
				State:        domain.StateReverseFound,
			})
		}
	}
	return results
}

// CacheStats returns a snapshot of the result cache counters.
func (r *Resolver) CacheStats() domain.CacheStats {
	return r.cache.Stats()
}

// ClearCache empties the result cache.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
}

// Close releases transport resources.
func (r *Resolver) Close() error {
	return r.searcher.Close()
}
