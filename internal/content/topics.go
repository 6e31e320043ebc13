package content

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"cryptowise/internal/domain"
)

//go:embed topics/*.md
var topicFS embed.FS

// Topic names, in menu order
const (
	TopicHome      = "home"
	TopicBenefits  = "benefits"
	TopicRisks     = "risks"
	TopicSolutions = "solutions"
	TopicBitcoin   = "bitcoin"
	TopicEthereum  = "ethereum"
	TopicSolana    = "solana"
	TopicRipple    = "ripple"
	TopicSummary   = "summary"
)

var topicOrder = []string{
	TopicHome, TopicBenefits, TopicRisks, TopicSolutions,
	TopicBitcoin, TopicEthereum, TopicSolana, TopicRipple, TopicSummary,
}

// topics whose heading comes from the string tables
var topicTitleKeys = map[string]string{
	TopicBenefits:  "benefits_title",
	TopicRisks:     "risks_title",
	TopicSolutions: "solutions_title",
	TopicSummary:   "summary_title",
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Topics returns the available topic names in menu order
func Topics() []string {
	out := make([]string, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// Topic returns the Markdown of a topic with its heading in lang
func Topic(lang, name string) (string, error) {
	if name == TopicHome {
		return fmt.Sprintf("# %s\n\n%s\n", Text(lang, "home_title"), Text(lang, "home_text")), nil
	}

	body, err := topicFS.ReadFile("topics/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q: %w", name, domain.ErrNotFound)
	}

	key, titled := topicTitleKeys[name]
	if !titled {
		return string(body), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Text(lang, key))
	b.Write(body)
	return b.String(), nil
}

// RenderHTML converts Markdown to HTML, tables included
func RenderHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
