package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses, newest first",
	RunE:  runHistory,
}

var historyFlags struct {
	databaseURL string
	page        int
	pageSize    int
}

func init() {
	historyCmd.Flags().StringVar(&historyFlags.databaseURL, "database-url", "", "PostgreSQL connection URL")
	historyCmd.Flags().IntVar(&historyFlags.page, "page", 1, "Page number, starting at 1")
	historyCmd.Flags().IntVar(&historyFlags.pageSize, "page-size", 20, "Results per page")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{DatabaseURL: historyFlags.databaseURL}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer store.Close()

	page, err := store.Query(ctx, historyFlags.page, historyFlags.pageSize)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}
