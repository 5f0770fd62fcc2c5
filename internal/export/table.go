package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"reddit-leads/internal/model"
)

// RenderTable prints the top n leads as a console table.
func RenderTable(w io.Writer, leads []model.Lead, n int) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"#", "sub", "kind", "intent", "score", "url"})
	for i, l := range leads {
		if i >= n {
			break
		}
		t.Append([]string{
			strconv.Itoa(i + 1),
			"r/" + l.Subreddit,
			string(l.Kind),
			fmt.Sprintf("%.2f", l.IntentScore),
			strconv.Itoa(l.Score),
			l.URL,
		})
	}
	t.Render()
}
