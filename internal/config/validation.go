package config

import (
	"fmt"

	"github.com/law-makers/scrape/internal/engine/extract"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.Delay < 0 || c.Delay > MaxDelay {
		return fmt.Errorf("delay must be between 0 and %s", MaxDelay)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit must be >= 0")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be > 0")
	}
	if _, err := c.TableHeaderMode(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// TableHeaderMode maps the table_header setting to an extraction policy
func (c *Config) TableHeaderMode() (extract.HeaderMode, error) {
	switch c.TableHeader {
	case "", "first-row":
		return extract.HeaderFirstRow, nil
	case "none":
		return extract.HeaderNone, nil
	}
	return extract.HeaderFirstRow, fmt.Errorf("table header must be first-row or none, got %q", c.TableHeader)
}
