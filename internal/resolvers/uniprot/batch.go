package uniprot

import (
	"fmt"
	"strings"
)

// Search fields of the registry query language.
const (
	// FieldSecondaryAccession matches entries listing an accession as
	// retired/superseded.
	FieldSecondaryAccession = "sec_acc"

	// FieldPrimaryAccession matches entries by current accession.
	FieldPrimaryAccession = "accession"
)

// windows partitions accessions into batches of at most size.
// Input order is preserved within and across windows.
func windows(accessions []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]string
	for start := 0; start < len(accessions); start += size {
		end := start + size
		if end > len(accessions) {
			end = len(accessions)
		}
		out = append(out, accessions[start:end])
	}
	return out
}

// buildQuery OR-combines per-accession field predicates into one registry
// query string, e.g. "(sec_acc:Q99895) OR (sec_acc:P0CG05)".
func buildQuery(field string, accessions []string) string {
	predicates := make([]string, len(accessions))
	for i, acc := range accessions {
		predicates[i] = fmt.Sprintf("(%s:%s)", field, acc)
	}
	return strings.Join(predicates, " OR ")
}
