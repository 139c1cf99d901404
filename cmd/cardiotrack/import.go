package main

import (
	"fmt"

	"github.com/goodtune/cardiotrack/internal/config"
	"github.com/goodtune/cardiotrack/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the session collection with a JSON dataset",
	Long: `Read a JSON array of cardio sessions from FILE and replace the
entire stored collection with its contents. Existing sessions are dropped.`,
	Example: `  cardiotrack -c config.yaml import cardio.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	store, err := openStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	inserted, err := importer.Run(cmd.Context(), store.Sessions(), path, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d sessions from %s\n", inserted, path)
	return nil
}
