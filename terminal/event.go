package terminal

import "github.com/gdamore/tcell/v2"

// EventType classifies host input for the frame loop
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse  // pointer moved or clicked, X/Y in cells
	EventEnter  // terminal gained focus
	EventLeave  // terminal lost focus
	EventResize // Width/Height in cells
	EventClosed // screen finalized, no more events
)

// Event is a tcell event reduced to what the portrait needs
type Event struct {
	Type   EventType
	Key    tcell.Key
	Rune   rune
	Mod    tcell.ModMask
	X, Y   int
	Width  int
	Height int
}

// Quit reports q, Esc or Ctrl-C
func (e Event) Quit() bool {
	if e.Type != EventKey {
		return false
	}
	return e.Key == tcell.KeyEscape || e.Key == tcell.KeyCtrlC ||
		(e.Key == tcell.KeyRune && (e.Rune == 'q' || e.Rune == 'Q'))
}

// Translate converts a tcell event, nil means the screen was finalized
func Translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{Type: EventMouse, X: x, Y: y, Mod: ev.Modifiers()}
	case *tcell.EventFocus:
		if ev.Focused {
			return Event{Type: EventEnter}
		}
		return Event{Type: EventLeave}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}
