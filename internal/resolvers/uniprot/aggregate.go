package uniprot

import (
	"strings"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

// detailSeparator joins per-part detail strings in composite states.
const detailSeparator = "|"

// Aggregate maps atomic results back onto the original raw inputs.
// Single-part inputs pass their atomic result through unchanged; composite
// inputs get the union of their parts' canonical IDs and a composite state
// chosen by precedence: error > all-obsolete > no-primary > resolved, so a
// failing part is never masked by a succeeding sibling.
func Aggregate(raws []string, parts map[string][]string, atomic map[string]domain.MappingResult) map[string]domain.MappingResult {
	results := make(map[string]domain.MappingResult, len(raws))
	for _, raw := range raws {
		if _, done := results[raw]; done {
			continue
		}
		results[raw] = aggregateOne(parts[raw], atomic)
	}
	return results
}

// aggregateOne combines the atomic results of one raw input's parts.
func aggregateOne(parts []string, atomic map[string]domain.MappingResult) domain.MappingResult {
	if len(parts) == 0 {
		return domain.ErrorResult(domain.ErrDetailEmptyInput)
	}

	if len(parts) == 1 {
		result, ok := atomic[parts[0]]
		if !ok {
			// Every part is resolved before aggregation runs; a hole here
			// is an internal accounting fault, surfaced rather than guessed.
			return domain.ErrorResult("error:metadata_processing_failed")
		}
		return result
	}

	var (
		union       []string
		details     []string
		anyError    bool
		allObsolete = true
	)
	for _, part := range parts {
		result, ok := atomic[part]
		if !ok {
			result = domain.ErrorResult("error:metadata_processing_failed")
		}
		union = append(union, result.CanonicalIDs...)
		details = append(details, part+":"+result.State)
		if strings.HasPrefix(result.State, domain.StateErrorPrefix) {
			anyError = true
		}
		if result.State != domain.StateObsolete {
			allObsolete = false
		}
	}

	canonical := domain.SortedUnique(union)
	detail := strings.Join(domain.SortedUnique(details), detailSeparator)

	switch {
	case anyError:
		return domain.MappingResult{
			CanonicalIDs: canonical,
			State:        domain.CompositeError + detailSeparator + detail,
		}
	case len(canonical) == 0 && allObsolete:
		return domain.MappingResult{State: domain.CompositeAllObsolete}
	case len(canonical) == 0:
		return domain.MappingResult{State: domain.CompositeNoPrimary + detailSeparator + detail}
	default:
		return domain.MappingResult{
			CanonicalIDs: canonical,
			State:        domain.CompositeResolved + detailSeparator + detail,
		}
	}
}
