package feed

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tinytelemetry/signboard/internal/model"
)

// Field names exactly as the backend sends them.
const (
	keyHeadline    = "News Headline"
	keyCategory    = "Category of the News"
	keyTimestamp   = "Timestamp"
	keyDescription = "Brief Description of the News Story"
	keyImpact      = "Students Impact"
	keyImage       = "Image"

	keyStudent      = "Student Name"
	keyYear         = "year"
	keySection      = "section"
	keyPosition     = "Your position /Achievement"
	keyEventTitle   = "Event Name/ Title"
	keyOrganization = "Organization \n[Organization in which event happened]"
	keyAwardSummary = "Short Description about the event"
	keySharable     = "Sharable Link" // assumed; the backend schema does not confirm it

	keyUpload      = "Upload your Poster Image (JPEG/PNG recommended) or Short Video (MP4/MOV recommended)"
	keyContentType = "Select Content Type"
)

// record is one loosely typed backend row.
type record map[string]any

// text returns a trimmed string for k. Numbers are formatted, anything
// else is treated as absent.
func (r record) text(k string) string {
	switch v := r[k].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func parseNews(recs []record) []model.NewsItem {
	out := make([]model.NewsItem, 0, len(recs))
	for _, r := range recs {
		headline := r.text(keyHeadline)
		if headline == "" {
			continue
		}
		out = append(out, model.NewsItem{
			Headline:    headline,
			Category:    r.text(keyCategory),
			Published:   parseTimestamp(r.text(keyTimestamp)),
			Description: r.text(keyDescription),
			Impact:      r.text(keyImpact),
			ImageURL:    r.text(keyImage),
		})
	}
	return out
}

// parseAwards keeps rows naming a student and reverses the feed so the
// latest submission comes first.
func parseAwards(recs []record) []model.Achievement {
	out := make([]model.Achievement, 0, len(recs))
	for _, r := range recs {
		name := r.text(keyStudent)
		if name == "" {
			continue
		}
		out = append(out, model.Achievement{
			StudentName:  name,
			Year:         r.text(keyYear),
			Section:      r.text(keySection),
			Position:     r.text(keyPosition),
			EventTitle:   r.text(keyEventTitle),
			Organization: r.text(keyOrganization),
			Description:  r.text(keyAwardSummary),
			MediaURL:     r.text(keySharable),
		})
	}
	slices.Reverse(out)
	return out
}

func parseEvents(recs []record) []model.EventMedia {
	out := make([]model.EventMedia, 0, len(recs))
	for _, r := range recs {
		upload := r.text(keyUpload)
		if upload == "" {
			continue
		}
		ct := r.text(keyContentType)
		out = append(out, model.EventMedia{
			UploadURL:   upload,
			ContentType: ct,
			Kind:        kindOf(ct),
		})
	}
	return out
}

func kindOf(contentType string) model.MediaKind {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "video") || strings.Contains(ct, "clip") {
		return model.MediaVideo
	}
	return model.MediaImage
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"2/1/2006 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// parseTimestamp accepts the layouts spreadsheet-backed forms emit. An
// unparseable value yields the zero time.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return ts
		}
	}
	return time.Time{}
}
