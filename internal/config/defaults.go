package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel       = "info"
	DefaultJSONLog        = false
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultHTTPTimeout    = 10 * time.Second
	DefaultDelay          = 1 * time.Second
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
	DefaultTableHeader    = "first-row"
	MaxDelay              = 5 * time.Minute
)
