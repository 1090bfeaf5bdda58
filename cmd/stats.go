package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mechdyane/mechdyane/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP earned per day and recent lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days < 1 {
			return fmt.Errorf("invalid --days %d: must be at least 1", days)
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		activity, err := repo.DailyXP(ctx, time.Now().AddDate(0, 0, -(days-1)), days)
		if err != nil {
			return fmt.Errorf("query activity: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "XP per day (last %d days)\n", days)
		fmt.Fprintln(out, strings.Repeat("─", 48))
		total := 0
		for _, d := range activity {
			fmt.Fprintf(out, "%-10s %-3s %8s  %s\n",
				d.Day.Format("2006-01-02"), d.Day.Format("Mon"), humanize.Comma(int64(d.XP)), xpBar(d.XP))
			total += d.XP
		}
		fmt.Fprintln(out, strings.Repeat("─", 48))
		fmt.Fprintf(out, "%-14s %8s\n", "TOTAL", humanize.Comma(int64(total)))

		recent, err := repo.QueryLessonEvents(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query lessons: %w", err)
		}
		if len(recent) == 0 {
			fmt.Fprintln(out, "\nNo lessons completed yet.")
			return nil
		}
		fmt.Fprintln(out, "\nRecent lessons")
		for _, e := range recent {
			fmt.Fprintf(out, "  %s  %-32s %d/%d  +%d XP  (%s)\n",
				humanize.Time(e.Timestamp), truncate(e.Topic, 32), e.Score, e.Total, e.XP, e.Domain)
		}
		return nil
	},
}

// xpBar draws one block per 50 XP, capped at 20.
func xpBar(xp int) string {
	return strings.Repeat("█", min(xp/50, 20))
}

func init() {
	statsCmd.Flags().Int("days", 7, "Number of days to show")
}
