// Package nav implements the screen navigation state machine: a current
// screen plus a bounded push-down history enabling single-step back
// navigation. Home is a history-reset boundary.
package nav

const ScreenHome = "home"

// maxHistoryDepth bounds the stack; the oldest entry is dropped first.
const maxHistoryDepth = 32

var screenTitles = map[string]string{
	"search":        "Search",
	"home":          "Home",
	"calendar":      "Calendar",
	"account":       "Account",
	"notifications": "Notifications",
	"messages":      "Messages",
	"new-event":     "New Event",
	"event-details": "Event Details",
	"edit-event":    "Edit Event",
}

// Title returns the display title for a screen id, or "" for unknown ids.
func Title(screen string) string {
	return screenTitles[screen]
}

// Stack tracks the current screen and the screens visited strictly before
// it, in visitation order. The history never contains the current screen.
type Stack struct {
	current string
	history []string
}

// NewStack starts at home with empty history.
func NewStack() *Stack {
	return &Stack{current: ScreenHome}
}

// Current returns the active screen id.
func (s *Stack) Current() string {
	return s.current
}

// History returns a copy of the back trail, most-recent-last.
func (s *Stack) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// GoTo switches to next, pushing the current screen onto the history.
// Empty or same-screen targets are no-ops. Navigating home clears the
// history: home is always reachable with no back trail.
// It reports whether the current screen changed.
func (s *Stack) GoTo(next string) bool {
	if next == "" || next == s.current {
		return false
	}

	if next == ScreenHome {
		s.history = s.history[:0]
	} else {
		if len(s.history) == maxHistoryDepth {
			copy(s.history, s.history[1:])
			s.history = s.history[:maxHistoryDepth-1]
		}
		s.history = append(s.history, s.current)
	}

	s.current = next
	return true
}

// GoBack pops the most recent history entry. With empty history it falls
// back to home unless already there, in which case it is a no-op.
// It reports whether the current screen changed.
func (s *Stack) GoBack() bool {
	if len(s.history) == 0 {
		if s.current == ScreenHome {
			return false
		}
		s.current = ScreenHome
		return true
	}

	last := len(s.history) - 1
	s.current = s.history[last]
	s.history = s.history[:last]
	return true
}
