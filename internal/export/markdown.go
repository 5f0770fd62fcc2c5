package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"reddit-leads/internal/model"
)

// maxMarkdownEntries caps how many ranked leads the report lists.
const maxMarkdownEntries = 200

// MarkdownMeta becomes the YAML frontmatter of the report.
type MarkdownMeta struct {
	Query       string   `yaml:"query"`
	Subreddits  []string `yaml:"subs"`
	Days        int      `yaml:"days"`
	MinIntent   float64  `yaml:"min_intent"`
	GeneratedAt string   `yaml:"generated_at"`
}

// WriteMarkdown writes the ranked lead report to path: YAML
// frontmatter, a title, then up to maxMarkdownEntries entries.
func WriteMarkdown(path string, meta MarkdownMeta, leads []model.Lead) error {
	if meta.GeneratedAt == "" {
		meta.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	}
	fm, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\n")

	if err := renderLeads(&buf, leadData(meta.Query, leads)); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func leadData(query string, leads []model.Lead) tmplData {
	n := len(leads)
	if n > maxMarkdownEntries {
		n = maxMarkdownEntries
	}
	entries := make([]tmplEntry, 0, n)
	for i, l := range leads[:n] {
		entries = append(entries, tmplEntry{
			Index:     i + 1,
			Kind:      string(l.Kind),
			Subreddit: l.Subreddit,
			Score:     l.Score,
			Intent:    fmt.Sprintf("%.2f", l.IntentScore),
			URL:       l.URL,
			Signals:   strings.Join(l.Signals, ", "),
			Title:     l.Title,
			Quoted:    "> " + strings.ReplaceAll(l.Text, "\n", "\n> "),
		})
	}
	return tmplData{Query: query, Entries: entries}
}
