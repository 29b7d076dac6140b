package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"arkmotors/internal/classify"
	"arkmotors/internal/config"
	"arkmotors/internal/logger"
	"arkmotors/internal/source"
	"arkmotors/pkg/models"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "arkmotors",
	Short: "Ark Motors accounting search and monthly settlement",
	Long: `Search and settlement tool for the Ark Motors books.

Reads the consolidated workbook (a local .xlsx file or a Google Sheets URL)
or, when that is missing, the legacy folder of individual workbooks, and
answers questions about employees, vehicles and monthly settlements.
Nothing is ever written back to the sources.

Environment variables:
  ARK_SOURCE     - Consolidated workbook path or Google Sheets URL
  ARK_LEGACY_DIR - Folder with the legacy workbooks (default ~/Desktop/amotors_V2)
  ARK_RULES_FILE - Optional YAML file replacing the classification rules
  ARK_CACHE_TTL  - How long a loaded snapshot is reused (default 5m)`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("source", "", "Consolidated workbook path or Google Sheets URL (overrides ARK_SOURCE)")
	rootCmd.PersistentFlags().String("legacy-dir", "", "Legacy workbook folder (overrides ARK_LEGACY_DIR)")
	rootCmd.PersistentFlags().String("rules", "", "YAML classification rules file (overrides ARK_RULES_FILE)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON format")
}

var (
	cacheOnce     sync.Once
	snapshotCache *source.Cache
)

// session is what every subcommand works from: the effective configuration
// and the output mode
type session struct {
	cfg  *config.Config
	json bool
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.Source = v
	}
	if v, _ := cmd.Flags().GetString("legacy-dir"); v != "" {
		cfg.LegacyDir = v
	}
	if v, _ := cmd.Flags().GetString("rules"); v != "" {
		cfg.RulesFile = v
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return &session{cfg: cfg, json: jsonOutput}, nil
}

// snapshot loads the data through the process-wide cache and reports tables
// that had to be replaced by empty ones
func (s *session) snapshot(ctx context.Context) (*models.Snapshot, error) {
	log := logger.WithComponent("cmd")

	cacheOnce.Do(func() {
		snapshotCache = source.NewCache(s.cfg.CacheTTL)
	})

	snap, err := snapshotCache.Load(ctx, source.NewLoader(s.cfg.Source, s.cfg.LegacyDir))
	if err != nil {
		if errors.Is(err, source.ErrNoData) {
			return nil, fmt.Errorf("no data found: put the consolidated workbook at %s or the legacy workbooks in %s: %w",
				s.cfg.Source, s.cfg.LegacyDir, err)
		}
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	log.Info().
		Str("origin", snap.Origin).
		Int("failures", len(snap.Failures)).
		Msg("Snapshot ready")

	if !s.json {
		for _, id := range models.AllTables {
			if err, ok := snap.Failures[id]; ok {
				warnColor.Fprintf(os.Stderr, "Warning: %s not loaded: %v\n", id.Label(), err)
			}
		}
	}
	return snap, nil
}

// classifier returns the default classifier or the one described by the rules file
func (s *session) classifier() (*classify.Classifier, error) {
	if s.cfg.RulesFile == "" {
		return classify.Default(), nil
	}
	c, err := classify.LoadFile(s.cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return c, nil
}
