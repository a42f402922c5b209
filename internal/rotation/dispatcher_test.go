package rotation

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolveKeyAliases(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(DefaultBindings(), &countingRotator{}, NewTimer(&countingRotator{}, time.Second, time.Second))
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
		ok   bool
	}{
		{"letter n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, CommandNext, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, CommandNext, true},
		{"letter p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, CommandPrev, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, CommandPrev, true},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Resolve(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Resolve() = (%s, %v), want (%s, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestApplyIgnoredWhileGated(t *testing.T) {
	t.Parallel()

	r := &countingRotator{}
	d := NewDispatcher(DefaultBindings(), r, NewTimer(r, time.Second, time.Second))
	if _, _, handled := d.Apply(CommandNext); handled {
		t.Fatal("Apply() handled before the timer was engaged")
	}
	if r.advances != 0 {
		t.Fatalf("advances = %d, want 0", r.advances)
	}
}

func TestRapidInputAppliesEveryEvent(t *testing.T) {
	t.Parallel()

	c := NewController(content(3, 3, 3), 3, nil)
	tm := NewTimer(c, time.Second, time.Second)
	tm.Engage()
	d := NewDispatcher(DefaultBindings(), c, tm)

	keys := []tea.KeyMsg{
		{Type: tea.KeyRight},
		{Type: tea.KeyRight},
		{Type: tea.KeyRunes, Runes: []rune("n")},
		{Type: tea.KeyLeft},
		{Type: tea.KeyRunes, Runes: []rune("n")},
	}
	var handles []Handle
	for _, k := range keys {
		if _, _, handled := d.HandleKey(k); !handled {
			t.Fatalf("%s not handled", k)
		}
		handles = append(handles, tm.Live())
	}
	st := c.State()
	if st.Epoch != uint64(len(keys)) {
		t.Fatalf("epoch = %d, want %d", st.Epoch, len(keys))
	}
	if st.Section != Promo {
		t.Fatalf("section = %s, want promo", st.Section)
	}
	for i := 1; i < len(handles); i++ {
		if handles[i] == handles[i-1] {
			t.Fatalf("key %d did not reset the timer", i)
		}
	}
}
