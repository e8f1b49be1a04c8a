package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var cacheSource string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the result cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the result cache",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheSource, "source", "uniprot", "source database")
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}

	stats, err := mappingService.CacheStats(cacheSource)
	if err != nil {
		return err
	}
	outputCacheStats(cmd, cacheSource, stats)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if mappingService == nil {
		return errors.New("mapping service not configured")
	}

	if err := mappingService.ClearCache(cacheSource); err != nil {
		return err
	}
	cmd.Printf("Cache cleared for %s.\n", cacheSource)
	return nil
}
