package uniprot

import "strings"

// SplitIdentifiers splits a raw identifier into atomic candidate
// accessions: first on ",", then on "_", trimming whitespace and dropping
// empty tokens. A plain accession comes back as a one-element slice.
func SplitIdentifiers(raw string) []string {
	var parts []string
	for _, byComma := range strings.Split(raw, ",") {
		for _, token := range strings.Split(byComma, "_") {
			token = strings.TrimSpace(token)
			if token != "" {
				parts = append(parts, token)
			}
		}
	}
	return parts
}

// Preprocess splits every raw identifier and returns the per-input part
// lists plus the global deduplicated atomic set in first-seen order. The
// same accession appearing inside multiple composites is resolved once.
// Pure and idempotent: preprocessing its own atomic output again yields
// the same set.
func Preprocess(raws []string) (parts map[string][]string, atomics []string) {
	parts = make(map[string][]string, len(raws))
	seen := make(map[string]struct{})

	for _, raw := range raws {
		if _, done := parts[raw]; done {
			continue
		}
		split := SplitIdentifiers(raw)
		parts[raw] = split
		for _, atomic := range split {
			if _, ok := seen[atomic]; ok {
				continue
			}
			seen[atomic] = struct{}{}
			atomics = append(atomics, atomic)
		}
	}
	return parts, atomics
}
