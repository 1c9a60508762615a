package cmd

import (
	"fmt"
	"os"
	"time"

	"newsquiz/internal/app"
	"newsquiz/internal/article"
	"newsquiz/internal/llm"
	"newsquiz/internal/quizgen"
	"newsquiz/internal/screens/quiz"
	"newsquiz/internal/session"
	"newsquiz/internal/store"

	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	questions, _ := cmd.Flags().GetInt("questions")
	keepArticle, _ := cmd.Flags().GetBool("keep-article")

	deps := quiz.Deps{
		Fetcher:   article.NewFetcher(20 * time.Second),
		Sessions:  st.SessionRepo(),
		Attempts:  st.AttemptRepo(),
		Policy:    session.Policy{KeepArticleAfterGenerate: keepArticle},
		Questions: questions,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable.")
	} else {
		deps.Generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(deps)
}

// openEventRepo opens the store for event logging in one-shot commands.
// On failure it returns a nil repo so the command still works, just
// without logging.
func openEventRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return st.EventRepo(), func() { st.Close() }, nil
}
