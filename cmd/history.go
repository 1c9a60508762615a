package cmd

import (
	"context"
	"fmt"
	"strings"

	"newsquiz/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		fmt.Printf("%-17s  %-50s  %-7s  %s\n", "Date", "Article", "Score", "URL")
		fmt.Println(strings.Repeat("─", 110))

		for _, a := range attempts {
			title := a.Title
			if title == "" {
				title = "(untitled)"
			}
			if len(title) > 50 {
				title = title[:50]
			}
			fmt.Printf("%-17s  %-50s  %3d/%-3d  %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				title,
				a.Score,
				a.Total,
				a.URL,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
