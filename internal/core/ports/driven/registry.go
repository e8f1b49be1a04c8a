package driven

import "context"

// RegistryEntry is one record returned by an upstream registry search.
type RegistryEntry struct {
	// PrimaryAccession is the entry's current canonical accession.
	PrimaryAccession string

	// SecondaryAccessions are retired accessions still indexed on the entry.
	SecondaryAccessions []string
}

// RegistrySearcher issues the two query shapes the resolution engine needs
// against an upstream registry. Implementations return the matching entries
// (possibly none) or a transport error; "not found" is an empty slice, never
// an error, so classification code does not infer meaning from error identity.
type RegistrySearcher interface {
	// SearchBySecondary returns entries whose secondary-accession list
	// contains any of the given accessions.
	SearchBySecondary(ctx context.Context, accessions []string) ([]RegistryEntry, error)

	// SearchByPrimary returns entries whose primary accession equals one
	// of the given accessions.
	SearchByPrimary(ctx context.Context, accessions []string) ([]RegistryEntry, error)

	// Close releases transport resources.
	Close() error
}
