package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"newsquiz/internal/article"
	"newsquiz/internal/llm"
	"newsquiz/internal/quizgen"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate a quiz for an article and print it as JSON",
	Long: `Fetch an article, run quiz generation, and print the resulting
questions to stdout as JSON. Events are still logged to the database
so 'newsquiz llm stats' includes these runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		ctx := cmd.Context()

		eventRepo, closeStore, err := openEventRepo(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: database unavailable, events will not be logged:", err)
		}
		if closeStore != nil {
			defer closeStore()
		}

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		fetcher := article.NewFetcher(20 * time.Second)
		art, err := fetcher.Fetch(ctx, args[0])
		if err != nil {
			return err
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		quiz, dropped, err := gen.Generate(ctx, quizgen.GenerateInput{
			ArticleText:  art.Text,
			NumQuestions: count,
		})
		if err != nil {
			return err
		}

		for _, d := range dropped {
			fmt.Fprintln(os.Stderr, "warning:", d.Error())
		}

		out, err := json.MarshalIndent(quiz, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
}
