package domain

import (
	"sort"
	"strings"
)

// Resolution states for a single accession.
//
// States are plain strings rather than an enum because composite and error
// states carry detail suffixes and callers are expected to branch on
// prefixes, never on error types.
const (
	// StatePrimary means the accession is itself a current primary accession.
	StatePrimary = "primary"

	// StateDemerged means the accession was split across two or more
	// current entries; the canonical set holds all of their primaries.
	StateDemerged = "demerged"

	// StateObsolete means the registry has no current mapping for the
	// accession (retired without successor, or never valid).
	StateObsolete = "obsolete"

	// StateSecondaryPrefix prefixes a retired accession that points to
	// exactly one current primary, e.g. "secondary:P01308".
	StateSecondaryPrefix = "secondary:"

	// StateErrorPrefix prefixes any failure state, e.g.
	// "error:batch_processing_failed:timeout".
	StateErrorPrefix = "error:"

	// StateCompositePrefix prefixes aggregated states for composite
	// (multi-part) inputs.
	StateCompositePrefix = "composite:"
)

// Error state details.
const (
	// ErrDetailEmptyInput marks inputs with no usable tokens after
	// splitting and trimming.
	ErrDetailEmptyInput = "error:empty_after_preprocess"

	// ErrDetailFoundUnclassified marks an upstream match that could not be
	// classified (e.g. an entry with no primary accession).
	ErrDetailFoundUnclassified = "error:found_unclassified"

	// ErrDetailBatchPrefix prefixes transport failures; the failing batch's
	// reason is appended, e.g. "error:batch_processing_failed:timeout".
	ErrDetailBatchPrefix = "error:batch_processing_failed:"
)

// Reverse mapping states. Reverse results carry the historical
// (secondary) accessions of a current primary, so the canonical-set size
// invariants of the forward states do not apply to them.
const (
	StateReverseFound    = "reverse:found"
	StateReverseNotFound = "reverse:not_found"
)

// Composite state tags for multi-part inputs. All but AllObsolete carry a
// "|"-joined, sorted, deduplicated list of "<part>:<state>" details.
const (
	CompositeResolved    = "composite:resolved"
	CompositeAllObsolete = "composite:all_parts_obsolete"
	CompositeNoPrimary   = "composite:no_primary_ids_found"
	CompositeError       = "composite:error_in_parts"
)

// MappingResult is the outcome of resolving one identifier.
// CanonicalIDs is nil for obsolete and error states, holds exactly one
// accession for primary/secondary states, and two or more for demerged.
type MappingResult struct {
	// CanonicalIDs are the current primary accessions, sorted.
	CanonicalIDs []string `json:"canonical_ids,omitempty"`

	// State is the resolution state tag.
	State string `json:"state"`
}

// IsError reports whether the result is a failure state, either directly
// or through a failing part of a composite.
func (r MappingResult) IsError() bool {
	return strings.HasPrefix(r.State, StateErrorPrefix) ||
		strings.HasPrefix(r.State, CompositeError)
}

// IsResolved reports whether the result carries at least one canonical ID.
func (r MappingResult) IsResolved() bool {
	return len(r.CanonicalIDs) > 0
}

// SecondaryResult builds a secondary-accession result pointing at primary.
func SecondaryResult(primary string) MappingResult {
	return MappingResult{
		CanonicalIDs: []string{primary},
		State:        StateSecondaryPrefix + primary,
	}
}

// DemergedResult builds a demerged result from the given primaries.
// The canonical set is sorted and deduplicated.
func DemergedResult(primaries []string) MappingResult {
	return MappingResult{
		CanonicalIDs: SortedUnique(primaries),
		State:        StateDemerged,
	}
}

// PrimaryResult builds a primary result for an accession that is current.
func PrimaryResult(accession string) MappingResult {
	return MappingResult{
		CanonicalIDs: []string{accession},
		State:        StatePrimary,
	}
}

// ObsoleteResult builds a result for an accession with no current mapping.
func ObsoleteResult() MappingResult {
	return MappingResult{State: StateObsolete}
}

// ErrorResult builds a failure result with the given error state tag.
func ErrorResult(state string) MappingResult {
	return MappingResult{State: state}
}

// MapOptions controls a single mapping invocation.
type MapOptions struct {
	// BypassCache skips cache reads. Successful results are still written
	// back, so bypass means "ignore stale reads", not "disable caching".
	BypassCache bool
}

// CacheStats is a snapshot of the result cache counters.
type CacheStats struct {
	Size   int `json:"size"`
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
}

// SortedUnique returns a sorted copy of values with duplicates removed.
func SortedUnique(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
