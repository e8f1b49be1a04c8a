package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
	"github.com/linkage-labs/idmap-cli/internal/logger"
)

var (
	mapInput       string
	mapWatch       bool
	mapBypassCache bool
	mapJSON        bool
	mapCSV         bool
	mapSource      string
	mapCacheStats  bool
)

var mapCmd = &cobra.Command{
	Use:   "map [identifiers...]",
	Short: "Resolve identifiers to current primary accessions",
	Long: `Resolves identifiers to their current primary accessions.

Identifiers may be given as arguments, read from a file with --input, or
both. Composite identifiers joined with "," or "_" are split into parts
and each part is resolved independently.

Examples:
  idmap map P62988 Q9H9K5
  idmap map "P62988_P12345"
  idmap map --input ids.txt --csv
  idmap map --input ids.txt --watch`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVarP(&mapInput, "input", "i", "", "file with one identifier per line")
	mapCmd.Flags().BoolVarP(&mapWatch, "watch", "w", false, "re-resolve whenever the input file changes")
	mapCmd.Flags().BoolVar(&mapBypassCache, "bypass-cache", false, "skip cache reads and query the registry directly")
	mapCmd.Flags().BoolVar(&mapJSON, "json", false, "output results as JSON")
	mapCmd.Flags().BoolVar(&mapCSV, "csv", false, "output results as CSV")
	mapCmd.Flags().StringVar(&mapSource, "source", "uniprot", "source database to resolve against")
	mapCmd.Flags().BoolVar(&mapCacheStats, "cache-stats", false, "print cache statistics after resolving")
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}
	if mapWatch && mapInput == "" {
		return errors.New("--watch requires --input")
	}

	identifiers, err := collectIdentifiers(args, mapInput)
	if err != nil {
		return err
	}
	if len(identifiers) == 0 && !mapWatch {
		return errors.New("no identifiers given; pass arguments or --input FILE")
	}

	if err := mapOnce(cmd, identifiers); err != nil {
		return err
	}

	if mapWatch {
		return watchInput(cmd, mapInput)
	}
	return nil
}

// mapOnce resolves one batch of identifiers and renders the results.
func mapOnce(cmd *cobra.Command, identifiers []string) error {
	if len(identifiers) == 0 {
		cmd.Println("No identifiers to resolve.")
		return nil
	}

	opts := domain.MapOptions{BypassCache: mapBypassCache}
	results, err := mappingService.Map(cmd.Context(), mapSource, identifiers, opts)
	if err != nil {
		return fmt.Errorf("mapping failed: %w", err)
	}

	if err := outputResults(cmd, identifiers, results, mapJSON, mapCSV); err != nil {
		return err
	}

	if mapCacheStats {
		stats, err := mappingService.CacheStats(mapSource)
		if err != nil {
			return err
		}
		cmd.Println()
		outputCacheStats(cmd, mapSource, stats)
	}
	return nil
}

// watchInput re-resolves the input file on every change until the command
// context is cancelled. The parent directory is watched so that editors
// replacing the file by rename are still seen.
func watchInput(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for changes (Ctrl-C to stop)...\n", path)

	target := filepath.Clean(path)
	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			identifiers, err := readIdentifierFile(path)
			if err != nil {
				logger.Warn("reading %s: %v", path, err)
				continue
			}
			cmd.Println()
			if err := mapOnce(cmd, identifiers); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// collectIdentifiers merges command line arguments with the optional
// input file, preserving order.
func collectIdentifiers(args []string, inputPath string) ([]string, error) {
	identifiers := make([]string, 0, len(args))
	identifiers = append(identifiers, args...)

	if inputPath != "" {
		fromFile, err := readIdentifierFile(inputPath)
		if err != nil {
			return nil, err
		}
		identifiers = append(identifiers, fromFile...)
	}
	return identifiers, nil
}

// readIdentifierFile reads one identifier per line. Blank lines and lines
// starting with "#" are skipped.
func readIdentifierFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var identifiers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identifiers = append(identifiers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return identifiers, nil
}
