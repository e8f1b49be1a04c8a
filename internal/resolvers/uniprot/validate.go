package uniprot

import "regexp"

// accessionPattern is the UniProt accession grammar: a 6-character form
// ([OPQ] prefix class) or a 6/10-character form ([A-NR-Z] prefix class).
var accessionPattern = regexp.MustCompile(
	`^([OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2})$`,
)

// Validation failure reasons.
const (
	ReasonEmpty           = "empty"
	ReasonPatternMismatch = "pattern_mismatch"
)

// Verdict is the outcome of validating one atomic accession.
type Verdict struct {
	Valid  bool
	Reason string
}

// Validate checks an atomic accession against the accession grammar.
// Invalid accessions are never queried upstream; the resolver classifies
// them obsolete directly.
func Validate(accession string) Verdict {
	if accession == "" {
		return Verdict{Reason: ReasonEmpty}
	}
	if !accessionPattern.MatchString(accession) {
		return Verdict{Reason: ReasonPatternMismatch}
	}
	return Verdict{Valid: true}
}
