package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mechdyane/mechdyane/internal/config"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/llm"
	"github.com/mechdyane/mechdyane/internal/logging"
	"github.com/mechdyane/mechdyane/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mechdyane",
	Short: "Gamified AI learning dashboard",
	Long: `Mechdyane is a terminal learning dashboard. Pick a domain, read an
AI-written lesson, pass the quiz and level up.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/mechdyane/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides db.path and MECHDYANE_DB)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(domainCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads .env from the working directory, then the config file
// named by --config or found in the default location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config or MECHDYANE_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the event log.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return logger, nil
}

// newContentProvider builds the lesson source from the environment. The
// "mock" provider serves the offline demo lesson. recorder may be nil.
func newContentProvider(ctx context.Context, logger *zap.Logger, recorder llm.EventRecorder) (content.Provider, string, error) {
	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, logger, recorder)
	if err != nil {
		return nil, "", err
	}
	if llmCfg.Provider == "mock" {
		return content.NewFake(), llmCfg.Provider, nil
	}

	ccfg := content.DefaultConfig()
	ccfg.Timeout = llmCfg.Timeout
	return content.NewClient(provider, ccfg, logger), llmCfg.Provider, nil
}
