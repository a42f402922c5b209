// Package rotation is the slideshow state machine: which section is on
// screen, the auto-advance timer and the manual NEXT/PREV dispatcher.
package rotation

// Section is one rotating content category, in display order.
type Section int

const (
	News Section = iota
	Award
	Event
	Promo

	sectionCount = int(Promo) + 1
)

// First and Terminal bound the rotation order.
const (
	First    = News
	Terminal = Promo
)

func (s Section) String() string {
	switch s {
	case News:
		return "news"
	case Award:
		return "award"
	case Event:
		return "event"
	case Promo:
		return "promo"
	default:
		return "unknown"
	}
}

// Title is the human label shown in the footer.
func (s Section) Title() string {
	switch s {
	case News:
		return "News"
	case Award:
		return "Achievements"
	case Event:
		return "Events"
	case Promo:
		return "Opportunities"
	default:
		return "?"
	}
}

// Next and Prev are the cyclic successor and predecessor.
func (s Section) Next() Section { return Section((int(s) + 1) % sectionCount) }
func (s Section) Prev() Section { return Section((int(s) - 1 + sectionCount) % sectionCount) }

// valid reports membership in the fixed section set.
func (s Section) valid() bool { return s >= News && s <= Promo }

// Sections lists every section in rotation order.
func Sections() []Section {
	return []Section{News, Award, Event, Promo}
}

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Command is a manual navigation request.
type Command int

const (
	CommandNext Command = iota
	CommandPrev
)

func (c Command) String() string {
	if c == CommandPrev {
		return "prev"
	}
	return "next"
}

// Direction maps a command onto the controller direction it drives.
func (c Command) Direction() Direction {
	if c == CommandPrev {
		return Backward
	}
	return Forward
}
