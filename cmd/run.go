package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mechdyane/mechdyane/internal/app"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/shell"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	eventRepo := st.EventRepo()
	provider, name, err := newContentProvider(ctx, logger, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lessons and recommendations will be unavailable.")
		logger.Warn("content provider unavailable", zap.Error(err))
		provider = content.Unconfigured{Cause: err}
	} else {
		logger.Info("content provider ready", zap.String("provider", name))
	}

	ctrl := shell.New(shell.Options{
		Provider: provider,
		Ledger:   progress.NewLedger(cfg.SeedProgress()),
		Events:   eventRepo,
		Profile: shell.Profile{
			Name:               cfg.Learner.Name,
			Joined:             cfg.Learner.Joined,
			Track:              cfg.Learner.Track,
			Interests:          cfg.Learner.Interests,
			DailyGoalXP:        cfg.Learner.DailyGoalXP,
			EmailNotifications: cfg.Learner.EmailNotifications,
			PublicProfile:      cfg.Learner.PublicProfile,
		},
		Logger:  logger,
		Context: ctx,
	})

	return app.Run(ctx, app.Options{Controller: ctrl, Logger: logger})
}
