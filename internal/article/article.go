// Package article fetches news pages and reduces them to quiz-ready
// plain text. The pipeline is fetch → readability extraction → markup
// stripping; everything after the network call is a pure transform.
package article

// Article is a fetched, normalized news article.
type Article struct {
	// URL is the source the article was fetched from.
	URL string

	// Title is the extracted headline, empty when none was found.
	Title string

	// Text is the model-facing body: no markup, whitespace runs
	// collapsed to single spaces.
	Text string

	// Preview is the reader-facing body with paragraph breaks kept, for
	// the preview screen. Like Text it contains no raw HTML.
	Preview string
}
