package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/law-makers/scrape/internal/utils/headers"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP/Scraping
	HTTPTimeout time.Duration
	Delay       time.Duration
	UserAgent   string
	Headers     map[string]string
	Proxies     []string

	// Rate Limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Export
	StrictCSV   bool
	TableHeader string
}

// Defaults returns a Config populated with the default values
func Defaults() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		HTTPTimeout:    DefaultHTTPTimeout,
		Delay:          DefaultDelay,
		UserAgent:      DefaultUserAgent,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		TableHeader:    DefaultTableHeader,
	}
}

// Load builds a Config by combining defaults, an optional config file, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Defaults()

	if cmd != nil {
		if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
			if err := cfg.LoadFile(f.Value.String()); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if cmd != nil {
		if err := cfg.applyFlags(cmd); err != nil {
			return nil, err
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFile overlays the YAML document at path onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var doc fileConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return doc.apply(c)
}

// fileConfig mirrors Config with durations as strings so "1.5s" style values work
type fileConfig struct {
	LogLevel       *string           `yaml:"log_level"`
	JSONLog        *bool             `yaml:"json_log"`
	Timeout        *string           `yaml:"timeout"`
	Delay          *string           `yaml:"delay"`
	UserAgent      *string           `yaml:"user_agent"`
	Headers        map[string]string `yaml:"headers"`
	Proxies        []string          `yaml:"proxies"`
	RateLimitRPS   *float64          `yaml:"rate_limit_rps"`
	RateLimitBurst *int              `yaml:"rate_limit_burst"`
	StrictCSV      *bool             `yaml:"strict_csv"`
	TableHeader    *string           `yaml:"table_header"`
}

func (f fileConfig) apply(c *Config) error {
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.JSONLog != nil {
		c.JSONLog = *f.JSONLog
	}
	if f.Timeout != nil {
		d, err := parseDuration("timeout", *f.Timeout)
		if err != nil {
			return err
		}
		c.HTTPTimeout = d
	}
	if f.Delay != nil {
		d, err := parseDuration("delay", *f.Delay)
		if err != nil {
			return err
		}
		c.Delay = d
	}
	if f.UserAgent != nil {
		c.UserAgent = *f.UserAgent
	}
	if len(f.Headers) > 0 {
		c.mergeHeaders(f.Headers)
	}
	if len(f.Proxies) > 0 {
		c.Proxies = append([]string(nil), f.Proxies...)
	}
	if f.RateLimitRPS != nil {
		c.RateLimitRPS = *f.RateLimitRPS
	}
	if f.RateLimitBurst != nil {
		c.RateLimitBurst = *f.RateLimitBurst
	}
	if f.StrictCSV != nil {
		c.StrictCSV = *f.StrictCSV
	}
	if f.TableHeader != nil {
		c.TableHeader = *f.TableHeader
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("SCRAPE_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := getenv("SCRAPE_PROXY"); v != "" {
		c.Proxies = []string{v}
	}
	if v := getenv("SCRAPE_DELAY"); v != "" {
		d, err := parseDuration("SCRAPE_DELAY", v)
		if err != nil {
			return err
		}
		c.Delay = d
	}
	if v := getenv("SCRAPE_TIMEOUT"); v != "" {
		d, err := parseDuration("SCRAPE_TIMEOUT", v)
		if err != nil {
			return err
		}
		c.HTTPTimeout = d
	}
	return nil
}

func (c *Config) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if s, _ := flags.GetString("user-agent"); s != "" {
		c.UserAgent = s
	}
	if p, _ := flags.GetStringArray("proxy"); len(p) > 0 {
		c.Proxies = p
	}
	if s, _ := flags.GetString("timeout"); s != "" {
		d, err := parseDuration("--timeout", s)
		if err != nil {
			return err
		}
		c.HTTPTimeout = d
	}
	if s, _ := flags.GetString("delay"); s != "" {
		d, err := parseDuration("--delay", s)
		if err != nil {
			return err
		}
		c.Delay = d
	}
	if h, _ := flags.GetStringArray("header"); len(h) > 0 {
		parsed, err := headers.ParseHeaders(h)
		if err != nil {
			return err
		}
		c.mergeHeaders(parsed)
	}
	if s, _ := flags.GetString("table-header"); s != "" {
		c.TableHeader = s
	}
	if b, _ := flags.GetBool("strict-csv"); b {
		c.StrictCSV = true
	}
	if b, _ := flags.GetBool("json"); b {
		c.JSONLog = true
	}
	if b, _ := flags.GetBool("quiet"); b {
		c.LogLevel = "error"
	}
	if b, _ := flags.GetBool("verbose"); b {
		c.LogLevel = "debug"
	}
	return nil
}

func (c *Config) mergeHeaders(h map[string]string) {
	if c.Headers == nil {
		c.Headers = make(map[string]string, len(h))
	}
	for k, v := range h {
		c.Headers[k] = v
	}
}

// parseDuration accepts Go durations ("1.5s", "500ms") and bare seconds ("2", "0.5")
func parseDuration(name, s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a duration like 1.5s", name, s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
