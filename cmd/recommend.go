package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechdyane/mechdyane/internal/catalog"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ask the AI tutor for next topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		interests, _ := cmd.Flags().GetStringSlice("interest")
		completed, _ := cmd.Flags().GetStringSlice("completed")

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if !cmd.Flags().Changed("interest") {
			interests = cfg.Learner.Interests
		}
		if !cmd.Flags().Changed("completed") {
			completed = cfg.Progress.CompletedLessons
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		provider, _, err := newContentProvider(cmd.Context(), logger, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		topics, err := provider.Recommend(cmd.Context(), interests, completed)
		if err != nil {
			return fmt.Errorf("recommend: %w", err)
		}
		if len(topics) == 0 {
			fmt.Println("No suggestions right now.")
			return nil
		}

		for i, rec := range catalog.Recommendations(topics) {
			fmt.Printf("%d. %s %s  (%s)\n", i+1, rec.Domain.Icon, rec.Topic, rec.Domain.Name)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringSlice("interest", nil, "Learner interest (repeatable; default from config)")
	recommendCmd.Flags().StringSlice("completed", nil, "Completed lesson title (repeatable; default from config)")
}
