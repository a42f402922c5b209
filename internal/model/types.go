package model

import "time"

// NewsItem is one validated record from the news feed.
type NewsItem struct {
	Headline    string
	Category    string    // empty when the feed leaves it blank
	Published   time.Time // zero when "Timestamp" is absent or unparseable
	Description string
	Impact      string // "Students Impact", optional
	ImageURL    string // optional
}

// Achievement is one validated record from the award/achievement feed.
type Achievement struct {
	StudentName  string
	Year         string
	Section      string
	Position     string // "Your position /Achievement"
	EventTitle   string
	Organization string
	Description  string
	MediaURL     string // sharable certificate/photo link, optional
}

// MediaKind discriminates event media.
type MediaKind int

const (
	MediaImage MediaKind = iota
	MediaVideo
)

func (k MediaKind) String() string {
	if k == MediaVideo {
		return "video"
	}
	return "image"
}

// EventMedia is one posted event item. Only items with a non-empty upload
// link survive ingestion.
type EventMedia struct {
	UploadURL   string
	ContentType string // raw "Select Content Type" value
	Kind        MediaKind
}

// PromoListing is one entry of the static promotional catalog.
type PromoListing struct {
	Company        string   `yaml:"company"`
	Logo           string   `yaml:"logo"`
	Role           string   `yaml:"role"`
	Description    string   `yaml:"description"`
	Type           string   `yaml:"type"`
	TargetAudience string   `yaml:"target-audience"`
	Deadline       string   `yaml:"deadline"`
	Stipend        string   `yaml:"stipend"`
	Link           string   `yaml:"link"`
	Eligibility    []string `yaml:"eligibility"`
}

// Impression records one slide becoming visible.
type Impression struct {
	SessionID string
	Epoch     uint64
	Section   string
	Item      string // short human label of what was shown
	ShownAt   time.Time
}

// SectionCount is the number of impressions recorded for one section.
type SectionCount struct {
	Section string `json:"section"`
	Count   int64  `json:"count"`
}
