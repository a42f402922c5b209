package model

import "context"

// ContentSource fetches the three remote content lists. Each call is
// independent; implementations must honor ctx cancellation.
type ContentSource interface {
	News(ctx context.Context) ([]NewsItem, error)
	Awards(ctx context.Context) ([]Achievement, error)
	Events(ctx context.Context) ([]EventMedia, error)
}

// ImpressionRecorder appends play log rows.
type ImpressionRecorder interface {
	Record(imp Impression) error
}

// ImpressionQuerier provides read-only play log aggregates.
type ImpressionQuerier interface {
	SectionCounts() ([]SectionCount, error)
	TotalImpressions() (int64, error)
}

// StatusReader exposes the latest published display snapshot. It is safe to
// call from any goroutine.
type StatusReader interface {
	Status() DisplayStatus
}
