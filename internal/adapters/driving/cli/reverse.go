package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reverseInput  string
	reverseJSON   bool
	reverseCSV    bool
	reverseSource string
)

var reverseCmd = &cobra.Command{
	Use:   "reverse [accessions...]",
	Short: "List historical accessions for primary accessions",
	Long: `Maps current primary accessions back to the historical (secondary)
accessions the registry lists for them.

Examples:
  idmap reverse P99999
  idmap reverse --input accessions.txt --json`,
	RunE: runReverse,
}

func init() {
	reverseCmd.Flags().StringVarP(&reverseInput, "input", "i", "", "file with one accession per line")
	reverseCmd.Flags().BoolVar(&reverseJSON, "json", false, "output results as JSON")
	reverseCmd.Flags().BoolVar(&reverseCSV, "csv", false, "output results as CSV")
	reverseCmd.Flags().StringVar(&reverseSource, "source", "uniprot", "source database to resolve against")
	rootCmd.AddCommand(reverseCmd)
}

func runReverse(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}

	identifiers, err := collectIdentifiers(args, reverseInput)
	if err != nil {
		return err
	}
	if len(identifiers) == 0 {
		return errors.New("no accessions given; pass arguments or --input FILE")
	}

	results, err := mappingService.ReverseMap(cmd.Context(), reverseSource, identifiers)
	if err != nil {
		return fmt.Errorf("reverse mapping failed: %w", err)
	}

	return outputResults(cmd, identifiers, results, reverseJSON, reverseCSV)
}
