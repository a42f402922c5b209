package rotation

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Bindings maps the two navigation commands to physical keys.
type Bindings struct {
	Next key.Binding
	Prev key.Binding
}

func DefaultBindings() Bindings {
	return Bindings{
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "prev"),
		),
	}
}

// Machine applies manual commands.
type Machine interface {
	Transition(cmd Command) State
}

// Dispatcher turns key presses into controller transitions followed by a
// timer reset. Each call is applied in full before it returns.
type Dispatcher struct {
	keys    Bindings
	machine Machine
	timer   *Timer
}

func NewDispatcher(keys Bindings, machine Machine, timer *Timer) *Dispatcher {
	return &Dispatcher{keys: keys, machine: machine, timer: timer}
}

// Resolve maps a key press to a command.
func (d *Dispatcher) Resolve(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, d.keys.Next):
		return CommandNext, true
	case key.Matches(msg, d.keys.Prev):
		return CommandPrev, true
	}
	return 0, false
}

// Apply transitions the machine and resets the timer. Commands arriving
// while the timer is not engaged (gate closed) are ignored.
func (d *Dispatcher) Apply(cmd Command) (State, tea.Cmd, bool) {
	if !d.timer.Engaged() {
		return State{}, nil, false
	}
	st := d.machine.Transition(cmd)
	d.timer.Observe(st)
	return st, d.timer.Reset(), true
}

// HandleKey resolves and applies msg. handled is false for keys that are
// not navigation commands.
func (d *Dispatcher) HandleKey(msg tea.KeyMsg) (st State, cmd tea.Cmd, handled bool) {
	c, ok := d.Resolve(msg)
	if !ok {
		return State{}, nil, false
	}
	return d.Apply(c)
}

func (d *Dispatcher) Bindings() Bindings { return d.keys }
