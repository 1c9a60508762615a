package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz generator that must follow the rules strictly.

Rules:
- Use ONLY the provided article text. Do not invent facts or use outside knowledge.
- Create the requested number of multiple-choice questions, each with exactly 4 options labeled A, B, C, D.
- Every question MUST include the "correct_answer" key naming the correct option. This is mandatory.
- Keep each question under 25 words.
- Output must be a single JSON array conforming to the schema below. Do not add any text before or after the JSON.`

// buildUserMessage constructs the user message from the article text and
// the requested question count. Pure function of its inputs: the same
// article and count always produce the same prompt.
func buildUserMessage(input GenerateInput, cfg Config) string {
	article := truncateArticle(input.ArticleText, cfg.MaxArticleChars)

	var b strings.Builder
	fmt.Fprintf(&b, "Create %d multiple-choice questions from the article below.\n\n", input.NumQuestions)

	b.WriteString("Each array element must match this JSON schema:\n")
	b.WriteString(SchemaJSON())
	b.WriteString("\n\nArticle text:\n\"\"\"\n")
	b.WriteString(article)
	b.WriteString("\n\"\"\"\n\nGenerate the quiz now:")

	return b.String()
}

// truncateArticle caps the article at max characters, cutting at a word
// boundary so the model never sees a half word at the end.
func truncateArticle(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := text[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut
}
