package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reddit-leads/internal/export"
	"reddit-leads/internal/fetch"
	"reddit-leads/internal/intent"
	"reddit-leads/internal/leads"
	"reddit-leads/internal/reddit"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var scanQuery string

// scanCmd runs the full pipeline: crawl, score, rank, export.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan Reddit for high-intent leads and export CSV/Markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		query := strings.TrimSpace(scanQuery)
		if query == "" {
			return fmt.Errorf("--query must not be empty")
		}
		subs := reddit.ParseSubreddits(cfg.Scan.Subreddits)
		if len(subs) == 0 {
			return fmt.Errorf("--subs must not be empty")
		}

		now := time.Now().UTC()
		afterUTC := now.Add(-time.Duration(cfg.Scan.Days) * 24 * time.Hour).Unix()

		outDir, err := filepath.Abs(cfg.Scan.OutputDir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		cacheDir := filepath.Join(outDir, "cache")

		politeDelay := time.Duration(cfg.Reddit.PoliteDelay * float64(time.Second))
		client := reddit.NewClient(cfg.Reddit.BaseURL, fetch.New(nil, cacheDir, politeDelay))

		ranked, posts := leads.Scan(cmd.Context(), client, intent.Default(), leads.Params{
			Query:           query,
			Subreddits:      subs,
			Limit:           cfg.Scan.Limit,
			AfterUTC:        afterUTC,
			IncludeComments: cfg.Scan.IncludeComments,
			MaxComments:     cfg.Scan.MaxComments,
			MinIntent:       cfg.Scan.MinIntent,
		})

		rawPath := filepath.Join(outDir, "raw.jsonl")
		if err := export.WriteRawJSONL(rawPath, posts); err != nil {
			return err
		}
		csvPath := filepath.Join(outDir, "leads.csv")
		if err := export.WriteCSV(csvPath, ranked); err != nil {
			return err
		}
		mdPath := filepath.Join(outDir, "leads.md")
		meta := export.MarkdownMeta{
			Query:       query,
			Subreddits:  subs,
			Days:        cfg.Scan.Days,
			MinIntent:   cfg.Scan.MinIntent,
			GeneratedAt: now.Format(time.RFC3339),
		}
		if err := export.WriteMarkdown(mdPath, meta, ranked); err != nil {
			return err
		}

		export.RenderTable(os.Stdout, ranked, 10)
		fmt.Printf("\nWrote: %s\nWrote: %s\nWrote: %s\n", csvPath, mdPath, rawPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	f := scanCmd.Flags()
	f.StringVarP(&scanQuery, "query", "q", "", "search query, e.g. 'crm alternative'")
	_ = scanCmd.MarkFlagRequired("query")

	f.String("subs", "SaaS,startups,Entrepreneur,smallbusiness", "comma-separated subreddits (without r/)")
	f.Int("days", 14, "lookback window in days")
	f.Int("limit", 80, "max posts to fetch (best-effort)")
	f.Bool("comments", true, "score comments too")
	f.Int("max-comments", 50, "max comments per post")
	f.Float64("min-intent", 2.0, "intent score filter threshold")
	f.Float64("sleep", 1.2, "polite delay between requests, seconds")
	f.String("out", "out", "output directory")

	// Flags override config.yaml values for the same keys.
	_ = viper.BindPFlag("scan.subreddits", f.Lookup("subs"))
	_ = viper.BindPFlag("scan.days", f.Lookup("days"))
	_ = viper.BindPFlag("scan.limit", f.Lookup("limit"))
	_ = viper.BindPFlag("scan.include_comments", f.Lookup("comments"))
	_ = viper.BindPFlag("scan.max_comments", f.Lookup("max-comments"))
	_ = viper.BindPFlag("scan.min_intent", f.Lookup("min-intent"))
	_ = viper.BindPFlag("scan.output_dir", f.Lookup("out"))
	_ = viper.BindPFlag("reddit.polite_delay", f.Lookup("sleep"))
}
