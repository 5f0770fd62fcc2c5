package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedditConfig controls the Reddit data source.
type RedditConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	PoliteDelay float64 `mapstructure:"polite_delay"` // seconds between live requests
}

// ScanConfig holds the scan defaults; command-line flags override.
type ScanConfig struct {
	Subreddits      string  `mapstructure:"subreddits"` // comma-separated, without r/
	Days            int     `mapstructure:"days"`
	Limit           int     `mapstructure:"limit"`
	IncludeComments bool    `mapstructure:"include_comments"`
	MaxComments     int     `mapstructure:"max_comments"`
	MinIntent       float64 `mapstructure:"min_intent"`
	OutputDir       string  `mapstructure:"output_dir"`
}

// Config is the top-level configuration structure.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Reddit RedditConfig `mapstructure:"reddit"`
	Scan   ScanConfig   `mapstructure:"scan"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Reddit.BaseURL == "" {
		c.Reddit.BaseURL = "https://www.reddit.com"
	}
	if c.Reddit.PoliteDelay == 0 {
		c.Reddit.PoliteDelay = 1.2
	}
	if c.Scan.Subreddits == "" {
		c.Scan.Subreddits = "SaaS,startups,Entrepreneur,smallbusiness"
	}
	if c.Scan.Days == 0 {
		c.Scan.Days = 14
	}
	if c.Scan.Limit == 0 {
		c.Scan.Limit = 80
	}
	if c.Scan.MaxComments == 0 {
		c.Scan.MaxComments = 50
	}
	if c.Scan.MinIntent == 0 {
		c.Scan.MinIntent = 2.0
	}
	if c.Scan.OutputDir == "" {
		c.Scan.OutputDir = "out"
	}
}
