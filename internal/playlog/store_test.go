package playlog

import (
	"testing"
	"time"

	"github.com/tinytelemetry/signboard/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndCount(t *testing.T) {
	s := newTestStore(t)

	imps := []model.Impression{
		{SessionID: "s1", Epoch: 0, Section: "news", Item: "Hackathon"},
		{SessionID: "s1", Epoch: 1, Section: "award", Item: "Code Sprint"},
		{SessionID: "s1", Epoch: 2, Section: "news", Item: "Hackathon"},
		{SessionID: "s1", Epoch: 3, Section: "news", Item: "Sports meet", ShownAt: time.Now()},
	}
	for _, imp := range imps {
		if err := s.Record(imp); err != nil {
			t.Fatalf("Record(%+v) error = %v", imp, err)
		}
	}

	counts, err := s.SectionCounts()
	if err != nil {
		t.Fatalf("SectionCounts() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}
	if counts[0].Section != "news" || counts[0].Count != 3 {
		t.Fatalf("counts[0] = %+v, want news=3", counts[0])
	}
	if counts[1].Section != "award" || counts[1].Count != 1 {
		t.Fatalf("counts[1] = %+v, want award=1", counts[1])
	}

	total, err := s.TotalImpressions()
	if err != nil || total != 4 {
		t.Fatalf("TotalImpressions() = %d, %v, want 4", total, err)
	}

	top, err := s.TopItems(1)
	if err != nil {
		t.Fatalf("TopItems() error = %v", err)
	}
	if len(top) != 1 || top[0].Item != "Hackathon" || top[0].Count != 2 {
		t.Fatalf("TopItems(1) = %+v", top)
	}
}

func TestEmptyStore(t *testing.T) {
	s := newTestStore(t)

	counts, err := s.SectionCounts()
	if err != nil || len(counts) != 0 {
		t.Fatalf("SectionCounts() = %v, %v, want empty", counts, err)
	}
	total, err := s.TotalImpressions()
	if err != nil || total != 0 {
		t.Fatalf("TotalImpressions() = %d, %v, want 0", total, err)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	if err := a.Record(model.Impression{SessionID: "a", Section: "promo"}); err != nil {
		t.Fatal(err)
	}
	if n, _ := b.TotalImpressions(); n != 0 {
		t.Fatalf("second store total = %d, want 0", n)
	}
}
