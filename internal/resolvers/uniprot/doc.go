// Package uniprot implements the UniProt identifier resolution client.
//
// Raw inputs may be composite (delimited) identifiers; they are split into
// atomic accessions, validated against the accession grammar, looked up in
// the shared result cache, and the remainder resolved against the UniProt
// REST search API in fixed-size batches. Each batch runs a two-phase
// lookup: first by secondary accession, then by primary accession for
// whatever the first phase did not claim. Results are classified as
// primary, secondary, demerged, obsolete, or error states and aggregated
// back onto the original inputs.
//
// MapIdentifiers never returns an error and never omits an input key;
// every failure mode is encoded as a tagged state in the result map.
package uniprot
