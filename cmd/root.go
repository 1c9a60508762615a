package cmd

import (
	"newsquiz/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsquiz",
	Short: "Quiz yourself on any news article",
	Long:  "NewsQuiz is a terminal app that fetches a news article and turns it into a multiple-choice quiz with AI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEWSQUIZ_DB env var)")
	rootCmd.Flags().IntP("questions", "n", 5, "Questions per quiz")
	rootCmd.Flags().Bool("keep-article", false, "Keep the article text in memory after the quiz is generated")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NEWSQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
