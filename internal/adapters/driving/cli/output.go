package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

// Styles for terminal output. Applied only when stdout is a terminal.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	resolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	obsoleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
)

// styledOutput reports whether to colour output.
func styledOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// outputResults renders results for the given identifiers in input order.
func outputResults(cmd *cobra.Command, identifiers []string, results map[string]domain.MappingResult, asJSON, asCSV bool) error {
	switch {
	case asJSON:
		return outputJSON(cmd, results)
	case asCSV:
		return outputCSV(cmd, identifiers, results)
	default:
		return outputTable(cmd, identifiers, results)
	}
}

// outputJSON renders results as indented JSON keyed by input identifier.
func outputJSON(cmd *cobra.Command, results map[string]domain.MappingResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputCSV renders results as CSV with one row per input identifier.
// Canonical accessions are joined with ";".
func outputCSV(cmd *cobra.Command, identifiers []string, results map[string]domain.MappingResult) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"input", "state", "canonical_ids"}); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	for _, id := range identifiers {
		result := results[id]
		row := []string{id, result.State, strings.Join(result.CanonicalIDs, ";")}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// outputTable renders an aligned text table, coloured when stdout is a
// terminal.
func outputTable(cmd *cobra.Command, identifiers []string, results map[string]domain.MappingResult) error {
	if len(identifiers) == 0 {
		cmd.Println("No identifiers to resolve.")
		return nil
	}

	idWidth := len("IDENTIFIER")
	stateWidth := len("STATE")
	for _, id := range identifiers {
		if len(id) > idWidth {
			idWidth = len(id)
		}
		if n := len(results[id].State); n > stateWidth {
			stateWidth = n
		}
	}

	styled := styledOutput()
	header := fmt.Sprintf("%-*s  %-*s  %s", idWidth, "IDENTIFIER", stateWidth, "STATE", "CANONICAL")
	if styled {
		header = headerStyle.Render(header)
	}
	cmd.Println(header)

	for _, id := range identifiers {
		result := results[id]
		state := fmt.Sprintf("%-*s", stateWidth, result.State)
		if styled {
			state = stateStyle(result).Render(state)
		}
		cmd.Printf("%-*s  %s  %s\n", idWidth, id, state, strings.Join(result.CanonicalIDs, ", "))
	}
	return nil
}

// stateStyle picks the colour for a result state.
func stateStyle(result domain.MappingResult) lipgloss.Style {
	switch {
	case result.IsError():
		return errorStyle
	case len(result.CanonicalIDs) > 0:
		return resolvedStyle
	default:
		return obsoleteStyle
	}
}

// outputCacheStats prints cache counters for a source.
func outputCacheStats(cmd *cobra.Command, source string, stats domain.CacheStats) {
	cmd.Printf("Cache stats for %s:\n", source)
	cmd.Printf("  Entries: %d\n", stats.Size)
	cmd.Printf("  Hits:    %d\n", stats.Hits)
	cmd.Printf("  Misses:  %d\n", stats.Misses)
}
