package models

import "time"

// Placeholders used when a page lacks the element a record field is read from
const (
	NoTitle       = "No title"
	NoDescription = "No description"
	NoKeywords    = "No keywords"
	NoAltText     = "No alt text"
)

// Record keys with a fixed meaning
const (
	KeyURL         = "url"
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyKeywords    = "keywords"
	KeyData        = "data"
)

// SessionConfig is the immutable configuration of a scraping session
type SessionConfig struct {
	BaseURL   string
	Delay     time.Duration
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// ImageRecord describes one image found on a page
type ImageRecord struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

// Field pairs an output name with the CSS selector whose matches fill it
type Field struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`
}

// PageResult reports the outcome of one page of a multi-page run
type PageResult struct {
	Index  int
	URL    string
	Record *Record
	Err    error
}
