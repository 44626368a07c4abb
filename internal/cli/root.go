// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Set by the root command before any subcommand runs.
	cfg *config.Config
	log *logrus.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Animated Rubik's cube simulator",
	Long: `cubesim - An animated 3x3 Rubik's cube engine for the terminal.

Turn layers interactively, watch random scrambles play out at speed and
replay them backwards to solved. Headless runs are recorded to a local
SQLite database for later analysis.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Storage.DBPath = dbPath
	}
	if verbose {
		c.Log.Level = "debug"
	}
	cfg = c
	log = cfg.NewLogger()
	log.WithField("config", configPath).Debug("configuration loaded")
	return nil
}

// openDB opens the session database, or returns nil if recording is
// disabled.
func openDB() (*storage.DB, error) {
	if cfg.Storage.Disabled {
		return nil, nil
	}
	path, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.WithField("path", db.Path()).Debug("database opened")
	return db, nil
}
