package rotation

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type countingRotator struct {
	advances int
	cycles   int
	perCycle int
}

func (r *countingRotator) Advance(Direction) State {
	r.advances++
	if r.perCycle > 0 && r.advances%r.perCycle == 0 {
		r.cycles++
	}
	return State{Epoch: uint64(r.advances), Cycles: r.cycles}
}

func (r *countingRotator) Transition(cmd Command) State {
	return r.Advance(cmd.Direction())
}

func TestTimerInertUntilEngaged(t *testing.T) {
	t.Parallel()

	r := &countingRotator{}
	tm := NewTimer(r, time.Second, 2*time.Second)
	if cmd := tm.Reset(); cmd != nil {
		t.Fatal("Reset() returned a command before Engage")
	}
	if tm.Armed() {
		t.Fatal("timer armed before Engage")
	}
	tm.Engage()
	if cmd := tm.Reset(); cmd == nil {
		t.Fatal("Reset() returned nil after Engage")
	}
	if !tm.Armed() {
		t.Fatal("timer not armed after Reset")
	}
}

func TestTimerFireAdvancesAndRearms(t *testing.T) {
	t.Parallel()

	r := &countingRotator{}
	tm := NewTimer(r, time.Second, 2*time.Second)
	tm.Engage()
	tm.Reset()
	h := tm.Live()

	_, cmd, fired := tm.Fire(FireMsg{Handle: h, At: time.Now()})
	if !fired || cmd == nil {
		t.Fatalf("Fire() fired=%v cmd=%v, want fired with re-arm", fired, cmd != nil)
	}
	if r.advances != 1 {
		t.Fatalf("advances = %d, want 1", r.advances)
	}
	if tm.Live() == h || tm.Live() == 0 {
		t.Fatalf("live handle = %d, want a fresh handle", tm.Live())
	}
}

func TestTimerResetReplacesHandle(t *testing.T) {
	t.Parallel()

	r := &countingRotator{}
	tm := NewTimer(r, time.Second, 2*time.Second)
	tm.Engage()
	tm.Reset()
	old := tm.Live()
	tm.Reset()

	if _, _, fired := tm.Fire(FireMsg{Handle: old}); fired {
		t.Fatal("stale handle fired")
	}
	if r.advances != 0 {
		t.Fatalf("advances = %d, want 0", r.advances)
	}
}

func TestManualNextThenTickIsOneTransition(t *testing.T) {
	t.Parallel()

	r := &countingRotator{}
	tm := NewTimer(r, time.Second, 2*time.Second)
	tm.Engage()
	tm.Reset()
	pending := tm.Live()

	d := NewDispatcher(DefaultBindings(), r, tm)
	if _, _, handled := d.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}); !handled {
		t.Fatal("n not handled")
	}
	// The tick armed before the key press lands right after it.
	tm.Fire(FireMsg{Handle: pending, At: time.Now()})

	if r.advances != 1 {
		t.Fatalf("advances = %d, want exactly 1", r.advances)
	}
}

func TestTimerCancelDropsPendingFire(t *testing.T) {
	t.Parallel()

	r := &countingRotator{}
	tm := NewTimer(r, time.Second, 2*time.Second)
	tm.Engage()
	tm.Reset()
	h := tm.Live()
	tm.Disengage()

	if _, _, fired := tm.Fire(FireMsg{Handle: h}); fired {
		t.Fatal("fire after Disengage advanced")
	}
	if tm.Reset() != nil {
		t.Fatal("Reset() armed after Disengage")
	}
}

func TestTimerSwitchesToSteadyAfterFirstCycle(t *testing.T) {
	t.Parallel()

	r := &countingRotator{perCycle: 4}
	tm := NewTimer(r, 10*time.Second, 20*time.Second)
	tm.Engage()
	tm.Reset()
	for i := 0; i < 3; i++ {
		tm.Fire(FireMsg{Handle: tm.Live()})
		if tm.Period() != 10*time.Second {
			t.Fatalf("fire %d: Period() = %s, want bootstrap", i+1, tm.Period())
		}
	}
	tm.Fire(FireMsg{Handle: tm.Live()})
	if tm.Period() != 20*time.Second {
		t.Fatalf("Period() = %s, want steady after a full cycle", tm.Period())
	}
}

func TestTimerProgress(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := NewTimer(&countingRotator{}, 0, 20*time.Second)
	tm.now = func() time.Time { return base }
	if got := tm.Progress(base); got != 0 {
		t.Fatalf("Progress() unarmed = %v, want 0", got)
	}
	tm.Engage()
	tm.Reset()
	if got := tm.Progress(base.Add(5 * time.Second)); got != 0.25 {
		t.Fatalf("Progress() = %v, want 0.25", got)
	}
	if got := tm.Progress(base.Add(time.Minute)); got != 1 {
		t.Fatalf("Progress() = %v, want 1", got)
	}
	if got := tm.Remaining(base.Add(15 * time.Second)); got != 5*time.Second {
		t.Fatalf("Remaining() = %s, want 5s", got)
	}
}
