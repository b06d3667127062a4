package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/learno/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lesson and teaching statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		sep := strings.Repeat("─", 40)

		fmt.Println("Sessions")
		fmt.Println(sep)
		fmt.Printf("%-24s  %6d\n", "Started", stats.SessionsStarted)
		fmt.Printf("%-24s  %6d\n", "Ended", stats.SessionsEnded)
		fmt.Printf("%-24s  %6d\n", "Completed the lesson", stats.SessionsCompleted)

		fmt.Println()
		fmt.Println("Teaching")
		fmt.Println(sep)
		fmt.Printf("%-24s  %6d\n", "Steps delivered", stats.StepsDelivered)
		fmt.Printf("%-24s  %6d\n", "Answers evaluated", stats.AnswersTotal)
		fmt.Printf("%-24s  %6d\n", "Answers correct", stats.AnswersCorrect)
		if stats.AnswersTotal > 0 {
			pct := float64(stats.AnswersCorrect) / float64(stats.AnswersTotal) * 100
			fmt.Printf("%-24s  %5.1f%%\n", "Accuracy", pct)
		}
		fmt.Printf("%-24s  %6d\n", "Hints given", stats.HintsGiven)
		fmt.Printf("%-24s  %6d\n", "Silence nudges", stats.SilenceNudges)

		fmt.Println()
		fmt.Println("Illustrations")
		fmt.Println(sep)
		fmt.Printf("%-24s  %6d\n", "Generated", stats.ImagesGenerated)
		fmt.Printf("%-24s  %6d\n", "Failed", stats.ImagesFailed)

		return nil
	},
}
