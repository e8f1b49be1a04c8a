package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured source databases",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}

	for _, source := range mappingService.Sources() {
		cmd.Println(source)
	}
	return nil
}
