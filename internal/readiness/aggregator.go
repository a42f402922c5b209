// Package readiness gates the presentation behind all three content feeds.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/signboard/internal/model"
)

// Status messages shown on the launch gate.
const (
	StatusPending = "Connecting to content feeds..."
	StatusReady   = "All feeds fetched • Ready to launch"
)

// State is the gate signal. It is never partially degraded: one failed or
// empty feed keeps Ready false.
type State struct {
	Ready   bool
	Error   bool
	Pending bool
	Status  string
}

// Lists are the three content lists from one settled attempt.
type Lists struct {
	News   []model.NewsItem
	Awards []model.Achievement
	Events []model.EventMedia
}

// Outcome is the settlement of one fetch attempt.
type Outcome struct {
	Generation uint64
	Lists      Lists
	NewsErr    error
	AwardsErr  error
	EventsErr  error
}

// usable drops the list of every source whose fetch failed, so a failed
// source counts as empty even when it returned rows.
func (o Outcome) usable() Lists {
	l := o.Lists
	if o.NewsErr != nil {
		l.News = nil
	}
	if o.AwardsErr != nil {
		l.Awards = nil
	}
	if o.EventsErr != nil {
		l.Events = nil
	}
	return l
}

// Err joins the per-source errors, nil when every fetch succeeded.
func (o Outcome) Err() error {
	return errors.Join(o.NewsErr, o.AwardsErr, o.EventsErr)
}

// Aggregator owns the attempt lifecycle. Begin, Retry and Settle run on
// the UI loop; Collect runs in a command goroutine and touches no state.
type Aggregator struct {
	source  model.ContentSource
	timeout time.Duration

	gen   uint64
	state State
	lists Lists
}

func New(source model.ContentSource, timeout time.Duration) *Aggregator {
	return &Aggregator{
		source:  source,
		timeout: timeout,
		state:   State{Pending: true, Status: StatusPending},
	}
}

// Begin starts a new attempt and returns its generation. State resets to
// pending; outcomes of earlier generations will be ignored.
func (a *Aggregator) Begin() uint64 {
	a.gen++
	a.state = State{Pending: true, Status: StatusPending}
	return a.gen
}

// Retry re-issues all three fetches. It is Begin under the name the gate
// uses.
func (a *Aggregator) Retry() uint64 {
	log.Printf("readiness: retry requested (attempt %d)", a.gen+1)
	return a.Begin()
}

func (a *Aggregator) Generation() uint64 { return a.gen }

// Collect fetches all three lists concurrently and waits for every fetch
// to settle. A failure does not cancel its siblings.
func (a *Aggregator) Collect(ctx context.Context, gen uint64) Outcome {
	out := Outcome{Generation: gen}
	var g errgroup.Group

	g.Go(func() error {
		fctx, cancel := a.fetchContext(ctx)
		defer cancel()
		out.Lists.News, out.NewsErr = a.source.News(fctx)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := a.fetchContext(ctx)
		defer cancel()
		out.Lists.Awards, out.AwardsErr = a.source.Awards(fctx)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := a.fetchContext(ctx)
		defer cancel()
		out.Lists.Events, out.EventsErr = a.source.Events(fctx)
		return nil
	})
	_ = g.Wait()
	return out
}

func (a *Aggregator) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return context.WithCancel(ctx)
}

// Settle applies an outcome. It returns false and leaves state untouched
// when the outcome belongs to a superseded attempt.
func (a *Aggregator) Settle(o Outcome) (State, bool) {
	if o.Generation != a.gen {
		return a.state, false
	}
	logOutcome("news", len(o.Lists.News), o.NewsErr)
	logOutcome("awards", len(o.Lists.Awards), o.AwardsErr)
	logOutcome("events", len(o.Lists.Events), o.EventsErr)

	a.lists = o.usable()
	a.state = Evaluate(o)
	return a.state, true
}

// Evaluate derives the gate state from an outcome alone.
func Evaluate(o Outcome) State {
	failed := failedSources(o)
	lists := o.usable()
	empty := emptySources(lists)
	st := State{
		Error: len(failed) > 0,
		Ready: len(failed) == 0 && len(lists.News) > 0 && len(lists.Awards) > 0 && len(lists.Events) > 0,
	}
	switch {
	case st.Error:
		st.Status = errorStatus(o, failed)
	case !st.Ready:
		st.Status = fmt.Sprintf("No content yet from %s", strings.Join(empty, ", "))
	default:
		st.Status = StatusReady
	}
	return st
}

func (a *Aggregator) State() State { return a.state }
func (a *Aggregator) Lists() Lists { return a.lists }

func failedSources(o Outcome) []string {
	var out []string
	if o.NewsErr != nil {
		out = append(out, "news")
	}
	if o.AwardsErr != nil {
		out = append(out, "awards")
	}
	if o.EventsErr != nil {
		out = append(out, "events")
	}
	return out
}

func emptySources(l Lists) []string {
	var out []string
	if len(l.News) == 0 {
		out = append(out, "news")
	}
	if len(l.Awards) == 0 {
		out = append(out, "awards")
	}
	if len(l.Events) == 0 {
		out = append(out, "events")
	}
	return out
}

// errorStatus prefers a status code when a source reported one and calls
// out timeouts separately.
func errorStatus(o Outcome, failed []string) string {
	err := o.Err()
	var coded interface{ StatusCode() int }
	switch {
	case errors.As(err, &coded):
		return fmt.Sprintf("⚠ Connection Error (%d) • %s", coded.StatusCode(), strings.Join(failed, ", "))
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("⚠ Connection Timed Out • %s", strings.Join(failed, ", "))
	default:
		return fmt.Sprintf("⚠ Connection Error • %s", strings.Join(failed, ", "))
	}
}

func logOutcome(source string, n int, err error) {
	if err != nil {
		log.Printf("readiness: %s fetch failed: %v", source, err)
		return
	}
	log.Printf("readiness: %s fetched %d items", source, n)
}
