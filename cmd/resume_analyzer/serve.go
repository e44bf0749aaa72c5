package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/history"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

var serveFlags struct {
	configPath  string
	port        int
	databaseURL string
	memoryStore bool
	modelDir    string
	skillsFile  string
	logJSON     bool
	debug       bool
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.configPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&serveFlags.port, "port", 0, "HTTP listen port")
	serveCmd.Flags().StringVar(&serveFlags.databaseURL, "database-url", "", "PostgreSQL connection URL")
	serveCmd.Flags().BoolVar(&serveFlags.memoryStore, "memory", false, "Use the in-memory history store")
	serveCmd.Flags().StringVar(&serveFlags.modelDir, "model-dir", "", "Directory with frozen model artifacts")
	serveCmd.Flags().StringVar(&serveFlags.skillsFile, "skills-file", "", "External skill vocabulary JSON")
	serveCmd.Flags().BoolVar(&serveFlags.logJSON, "log-json", false, "JSON log encoding")
	serveCmd.Flags().BoolVar(&serveFlags.debug, "debug", false, "Debug log level")
	rootCmd.AddCommand(serveCmd)
}

func loadServeConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if serveFlags.configPath != "" {
		loaded, err := config.LoadConfig(serveFlags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags win over file values, the environment fills the rest.
	if serveFlags.port != 0 {
		cfg.Port = serveFlags.port
	}
	if serveFlags.databaseURL != "" {
		cfg.DatabaseURL = serveFlags.databaseURL
	}
	if serveFlags.memoryStore {
		cfg.MemoryStore = true
	}
	if serveFlags.modelDir != "" {
		cfg.ModelDir = serveFlags.modelDir
	}
	if serveFlags.skillsFile != "" {
		cfg.SkillsFile = serveFlags.skillsFile
	}
	if serveFlags.logJSON {
		cfg.LogJSON = true
	}
	if serveFlags.debug {
		cfg.Debug = true
	}
	cfg.FromEnv()
	if cfg.Port == 0 {
		cfg.Port = config.DefaultPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.store.Close()

	srv := server.New(server.Config{Port: cfg.Port}, deps.analyzer, deps.store, deps.registry, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// pipeline bundles the wired components the commands share.
type pipeline struct {
	registry *classify.Registry
	analyzer *analyzer.Analyzer
	store    history.Store
}

// buildPipeline loads the model artifacts and wires the analyzer and store.
// A model load failure is fatal and aborts startup.
func buildPipeline(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pipeline, error) {
	var regOpts []classify.RegistryOption
	if cfg.ModelDir != "" {
		regOpts = append(regOpts, classify.WithModelDir(cfg.ModelDir))
	}
	regOpts = append(regOpts, classify.WithLogger(log))
	registry := classify.NewRegistry(regOpts...)
	if err := registry.Load(); err != nil {
		return nil, fmt.Errorf("startup aborted: %w", err)
	}

	skillExtractor, err := loadSkillExtractor(cfg.SkillsFile)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		registry: registry,
		analyzer: analyzer.New(registry, skillExtractor, analyzer.WithLogger(log)),
		store:    store,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (history.Store, error) {
	if cfg.MemoryStore {
		log.Info("using in-memory history store")
		return history.NewMemory(), nil
	}
	pg, err := history.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, err
	}
	log.Info("connected to postgres history store")
	return pg, nil
}
