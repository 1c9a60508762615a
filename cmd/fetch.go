package cmd

import (
	"fmt"
	"time"

	"newsquiz/internal/article"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch an article and print its readable text (no database)",
	Long: `Fetch a news article, strip the page down to its readable content,
and print it to stdout. Useful for checking what the quiz generator
will actually see for a given URL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")

		fetcher := article.NewFetcher(20 * time.Second)
		art, err := fetcher.Fetch(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if art.Title != "" {
			fmt.Println("# " + art.Title)
			fmt.Println()
		}
		if plain {
			fmt.Println(art.Text)
		} else {
			fmt.Println(art.Preview)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().Bool("plain", false, "Print the collapsed plain text sent to the model instead of markdown")
}
