package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/signboard/internal/feed"
	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/readiness"
	"github.com/tinytelemetry/signboard/internal/rotation"
)

// contentLoadedMsg carries a settled fetch attempt.
type contentLoadedMsg struct {
	outcome readiness.Outcome
}

// frameMsg redraws the clock and progress bar. seq ties it to one board
// mount so a stale loop dies out.
type frameMsg struct {
	seq uint64
	at  time.Time
}

// mediaResolvedMsg reports the probe for the slide shown at epoch.
type mediaResolvedMsg struct {
	epoch uint64
	res   feed.Resolution
}

type impressionsLoadedMsg struct {
	counts []model.SectionCount
	err    error
}

// RemoteMsg is a command injected from outside the UI loop.
type RemoteMsg struct {
	Command rotation.Command
	Retry   bool
}

const frameInterval = 250 * time.Millisecond

func fetchContentCmd(agg *readiness.Aggregator, gen uint64) tea.Cmd {
	return func() tea.Msg {
		return contentLoadedMsg{outcome: agg.Collect(context.Background(), gen)}
	}
}

func frameTickCmd(seq uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(at time.Time) tea.Msg {
		return frameMsg{seq: seq, at: at}
	})
}

// resolveMediaCmd probes candidates off the loop. Without a prober the
// primary candidate is used as is.
func resolveMediaCmd(p *feed.Prober, epoch uint64, candidates []string) tea.Cmd {
	if len(candidates) == 0 {
		return nil
	}
	if p == nil {
		return func() tea.Msg {
			return mediaResolvedMsg{epoch: epoch, res: feed.Resolution{URL: candidates[0], Stage: feed.StagePrimary}}
		}
	}
	return func() tea.Msg {
		return mediaResolvedMsg{epoch: epoch, res: p.Resolve(context.Background(), candidates)}
	}
}

func recordImpressionCmd(rec model.ImpressionRecorder, imp model.Impression) tea.Cmd {
	if rec == nil {
		return nil
	}
	return func() tea.Msg {
		if err := rec.Record(imp); err != nil {
			log.Printf("tui: record impression: %v", err)
		}
		return nil
	}
}

func loadImpressionsCmd(q model.ImpressionQuerier) tea.Cmd {
	return func() tea.Msg {
		counts, err := q.SectionCounts()
		return impressionsLoadedMsg{counts: counts, err: err}
	}
}
