package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/middlechamber/leaderboard"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the local leaderboard",
	Long: `Display the best recorded playthroughs.

Examples:
  middlechamber scores
  middlechamber scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := leaderboard.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.TopScores(cfg.GameSlug, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", cfg.GameSlug)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-9s  %s\n", "Rank", "Name", "Score", "Completed", "Date")
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-9s  %s\n", "----", "----", "-----", "---------", "----")
	for i, e := range entries {
		done := "no"
		if e.Completed {
			done = "yes"
		}
		fmt.Fprintf(out, "  %-4d  %-20s  %-8d  %-9s  %s\n", i+1, e.Name, e.Score, done, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(cfg.GameSlug); err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", high)
	}
	return nil
}
