package export

import (
	_ "embed"
	"io"
	"text/template"
)

type tmplEntry struct {
	Index     int
	Kind      string
	Subreddit string
	Score     int
	Intent    string
	URL       string
	Signals   string
	Title     string
	Quoted    string
}

type tmplData struct {
	Query   string
	Entries []tmplEntry
}

//go:embed leads.tmpl
var leadsTpl string

var compiled = template.Must(template.New("leads").Parse(leadsTpl))

func renderLeads(w io.Writer, d tmplData) error {
	return compiled.Execute(w, d)
}
