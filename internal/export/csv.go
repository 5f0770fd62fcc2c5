// Package export renders scan results into the artifacts handed to
// users: a CSV sheet, a markdown report, a raw JSONL archive, and a
// console table.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"reddit-leads/internal/model"
)

var csvHeader = []string{"kind", "subreddit", "intent_score", "score", "author", "created_utc", "title", "url", "signals", "text"}

// WriteCSV writes every lead to a CSV file at path.
func WriteCSV(path string, leads []model.Lead) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range leads {
		rec := []string{
			string(l.Kind),
			l.Subreddit,
			fmt.Sprintf("%.2f", l.IntentScore),
			strconv.Itoa(l.Score),
			l.Author,
			strconv.FormatInt(l.CreatedUTC, 10),
			l.Title,
			l.URL,
			strings.Join(l.Signals, ","),
			l.Text,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
