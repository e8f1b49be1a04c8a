package uniprot

import (
	"github.com/linkage-labs/idmap-cli/internal/core/domain"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
)

// classifySecondary classifies the accessions of one batch against the
// secondary-accession phase results. It returns the classified results and
// the accessions not claimed by any entry, which move on to the primary
// phase. Secondary matches always win over primary matches: an accession
// still listed as secondary somewhere has an authoritative successor, so
// it is never reported as a clean primary.
func classifySecondary(batch []string, entries []driven.RegistryEntry) (map[string]domain.MappingResult, []string) {
	inBatch := make(map[string]struct{}, len(batch))
	for _, acc := range batch {
		inBatch[acc] = struct{}{}
	}

	// Collect, per batch accession, the primary accessions of every entry
	// listing it as secondary. found tracks matches independently of the
	// primaries so an entry with a missing primary still counts as found.
	found := make(map[string]bool)
	primaries := make(map[string][]string)
	for _, entry := range entries {
		for _, sec := range entry.SecondaryAccessions {
			if _, ok := inBatch[sec]; !ok {
				continue
			}
			found[sec] = true
			if entry.PrimaryAccession != "" {
				primaries[sec] = append(primaries[sec], entry.PrimaryAccession)
			}
		}
	}

	results := make(map[string]domain.MappingResult, len(batch))
	var remaining []string
	for _, acc := range batch {
		if !found[acc] {
			remaining = append(remaining, acc)
			continue
		}
		// Deduplicate before counting: two entries pointing at the same
		// primary is still a plain secondary, not a demerge.
		distinct := domain.SortedUnique(primaries[acc])
		switch len(distinct) {
		case 0:
			results[acc] = domain.ErrorResult(domain.ErrDetailFoundUnclassified)
		case 1:
			results[acc] = domain.SecondaryResult(distinct[0])
		default:
			results[acc] = domain.DemergedResult(distinct)
		}
	}
	return results, remaining
}

// classifyPrimary classifies accessions the secondary phase did not claim.
// An accession found as its own primary is current; anything else has no
// mapping left in the registry and is obsolete.
func classifyPrimary(remaining []string, entries []driven.RegistryEntry) map[string]domain.MappingResult {
	current := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.PrimaryAccession != "" {
			current[entry.PrimaryAccession] = struct{}{}
		}
	}

	results := make(map[string]domain.MappingResult, len(remaining))
	for _, acc := range remaining {
		if _, ok := current[acc]; ok {
			results[acc] = domain.PrimaryResult(acc)
		} else {
			results[acc] = domain.ObsoleteResult()
		}
	}
	return results
}
