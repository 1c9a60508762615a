package article

import (
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Normalize runs the readability pass over raw page HTML and produces
// both text variants. The readability step isolates the main article
// block, dropping navigation, ads, and sidebars; the stripping step
// removes every remaining tag and all images.
func Normalize(pageHTML string, pageURL *url.URL) (*Article, error) {
	doc, err := readability.FromReader(strings.NewReader(pageHTML), pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract main content: %w", err)
	}

	plain := StripTags(doc.Content)

	art := &Article{
		URL:     pageURL.String(),
		Title:   strings.TrimSpace(doc.Title),
		Text:    CollapseWhitespace(plain),
		Preview: renderPreview(doc.Content, plain),
	}
	if art.Text == "" {
		return nil, fmt.Errorf("no readable text in %s", pageURL)
	}
	return art, nil
}

// renderPreview converts the extracted article HTML to Markdown for the
// preview screen, falling back to the stripped plain text when the
// conversion fails.
func renderPreview(content, plain string) string {
	md, err := htmltomarkdown.ConvertString(content)
	if err != nil || strings.TrimSpace(md) == "" {
		return strings.TrimSpace(plain)
	}
	return strings.TrimSpace(md)
}

// StripTags reduces an HTML fragment to text. Block-level boundaries
// become line breaks; script, style, and image content is dropped.
func StripTags(fragment string) string {
	var b strings.Builder
	skipDepth := 0

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedTag(tag) {
				skipDepth++
			} else if blockTag(tag) {
				b.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedTag(tag) && skipDepth > 0 {
				skipDepth--
			} else if blockTag(tag) {
				b.WriteByte('\n')
			}

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTag(string(name)) {
				b.WriteByte('\n')
			}

		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// CollapseWhitespace folds every run of whitespace, newlines included,
// into a single space. This is the model-facing variant: one long line
// with no markup artifacts.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CollapseBlankLines trims trailing space per line and folds runs of
// blank lines into one, keeping paragraph structure readable.
func CollapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := true
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// skippedTag lists container elements whose text content is dropped
// entirely. Void elements like img never carry text, so they need no
// entry here.
func skippedTag(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "svg", "iframe":
		return true
	}
	return false
}

func blockTag(tag string) bool {
	switch tag {
	case "p", "div", "br", "li", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "section", "article", "tr", "table":
		return true
	}
	return false
}
