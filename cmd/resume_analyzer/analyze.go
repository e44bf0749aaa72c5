package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a resume from a file or stdin and print the result as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

var analyzeFlags struct {
	quick      bool
	modelDir   string
	skillsFile string
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeFlags.quick, "quick", false, "Classification only, skip skills and metrics")
	analyzeCmd.Flags().StringVar(&analyzeFlags.modelDir, "model-dir", "", "Directory with frozen model artifacts")
	analyzeCmd.Flags().StringVar(&analyzeFlags.skillsFile, "skills-file", "", "External skill vocabulary JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var (
		text []byte
		err  error
	)
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read resume text: %w", err)
	}

	cfg := &config.Config{
		ModelDir:   analyzeFlags.modelDir,
		SkillsFile: analyzeFlags.skillsFile,
	}
	cfg.FromEnv()

	a, err := buildAnalyzer(cfg, zap.NewNop())
	if err != nil {
		return err
	}

	mode := analyzer.ModeDeep
	if analyzeFlags.quick {
		mode = analyzer.ModeQuick
	}

	result, err := a.Analyze(context.Background(), string(text), mode)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// buildAnalyzer wires the classifier registry and skill extractor without
// touching the history store.
func buildAnalyzer(cfg *config.Config, log *zap.Logger) (*analyzer.Analyzer, error) {
	var regOpts []classify.RegistryOption
	if cfg.ModelDir != "" {
		regOpts = append(regOpts, classify.WithModelDir(cfg.ModelDir))
	}
	regOpts = append(regOpts, classify.WithLogger(log))
	registry := classify.NewRegistry(regOpts...)
	if err := registry.Load(); err != nil {
		return nil, err
	}

	skillExtractor, err := loadSkillExtractor(cfg.SkillsFile)
	if err != nil {
		return nil, err
	}
	return analyzer.New(registry, skillExtractor, analyzer.WithLogger(log)), nil
}

func loadSkillExtractor(path string) (*skills.Extractor, error) {
	if path == "" {
		return skills.NewExtractor()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}
	return skills.NewExtractorFromJSON(data)
}
