package rotation

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handle identifies one armed timer. The zero Handle is never live.
type Handle uint64

var handleSeq atomic.Uint64

func nextHandle() Handle { return Handle(handleSeq.Add(1)) }

// FireMsg is delivered when an armed timer elapses.
type FireMsg struct {
	Handle Handle
	At     time.Time
}

// Rotator is what the timer drives on each fire.
type Rotator interface {
	Advance(dir Direction) State
}

// Timer is the single-owner auto-advance scheduler. At most one handle is
// live; a FireMsg carrying any other handle is dropped. The timer stays
// inert until Engage is called.
type Timer struct {
	rotator   Rotator
	bootstrap time.Duration
	steady    time.Duration

	engaged bool
	settled bool
	live    Handle
	armedAt time.Time

	now func() time.Time
}

// NewTimer uses bootstrap as the period until the first full rotation
// cycle completes and steady afterwards.
func NewTimer(r Rotator, bootstrap, steady time.Duration) *Timer {
	if bootstrap <= 0 {
		bootstrap = steady
	}
	return &Timer{rotator: r, bootstrap: bootstrap, steady: steady, now: time.Now}
}

// Engage allows the timer to arm. Called once the readiness gate opens.
func (t *Timer) Engage() { t.engaged = true }

// Disengage cancels any live handle and makes the timer inert again.
func (t *Timer) Disengage() {
	t.Cancel()
	t.engaged = false
}

func (t *Timer) Engaged() bool { return t.engaged }

// Reset cancels the live handle and arms a new one. It returns nil while
// the timer is not engaged.
func (t *Timer) Reset() tea.Cmd {
	t.Cancel()
	if !t.engaged {
		return nil
	}
	h := nextHandle()
	t.live = h
	t.armedAt = t.now()
	return tea.Tick(t.Period(), func(at time.Time) tea.Msg {
		return FireMsg{Handle: h, At: at}
	})
}

// Cancel invalidates the live handle so its pending tick is ignored.
func (t *Timer) Cancel() {
	t.live = 0
	t.armedAt = time.Time{}
}

// Fire handles an elapsed tick. Stale handles are dropped and report
// fired=false; a live one advances the rotator forward and re-arms.
func (t *Timer) Fire(msg FireMsg) (st State, cmd tea.Cmd, fired bool) {
	if msg.Handle == 0 || msg.Handle != t.live {
		return State{}, nil, false
	}
	st = t.rotator.Advance(Forward)
	t.Observe(st)
	return st, t.Reset(), true
}

// Observe switches to the steady period once a full cycle has completed.
func (t *Timer) Observe(st State) {
	if st.Cycles > 0 {
		t.settled = true
	}
}

// Period is the interval the next arm will use.
func (t *Timer) Period() time.Duration {
	if t.settled {
		return t.steady
	}
	return t.bootstrap
}

func (t *Timer) Armed() bool   { return t.live != 0 }
func (t *Timer) Live() Handle  { return t.live }
func (t *Timer) Settled() bool { return t.settled }

// Progress is the elapsed fraction of the current period in [0, 1].
func (t *Timer) Progress(now time.Time) float64 {
	if t.live == 0 {
		return 0
	}
	p := t.Period()
	if p <= 0 {
		return 1
	}
	f := float64(now.Sub(t.armedAt)) / float64(p)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Remaining is the time left before the live handle fires.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if t.live == 0 {
		return 0
	}
	return max(t.armedAt.Add(t.Period()).Sub(now), 0)
}
