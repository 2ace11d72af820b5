package tui

import tea "github.com/charmbracelet/bubbletea"

// EventKind identifies the lifecycle or input event carried by an Event.
type EventKind uint8

const (
	EventEnable EventKind = iota
	EventDisable
	EventChildAdded
	EventChildRemoved
	EventChildPolished
	EventMove
	EventResize
	EventMousePress
	EventMouseRelease
	EventMouseDoubleClick
	EventMouseMove
	EventKeyPress
	EventKeyRelease
	EventFocusIn
	EventFocusOut
	EventDelete
	EventPaint
	EventTimer
	EventDestroy
)

var eventKindNames = [...]string{
	"enable", "disable", "child_added", "child_removed", "child_polished",
	"move", "resize", "mouse_press", "mouse_release", "mouse_double_click",
	"mouse_move", "key_press", "key_release", "focus_in", "focus_out",
	"delete", "paint", "timer", "destroy",
}

func (k EventKind) String() string {
	if int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is delivered to a widget through Send. Only the payload field that
// matches Kind is meaningful.
type Event struct {
	Kind  EventKind
	Child *Widget      // child events
	Point Point        // move
	Area  Area         // resize
	Mouse tea.MouseMsg // mouse events
	Key   tea.KeyMsg   // key events
}

// Signals are the per-event handler lists of a widget.
type Signals struct {
	Enabled            Notify
	Disabled           Notify
	ChildAdded         Signal[*Widget]
	ChildRemoved       Signal[*Widget]
	ChildPolished      Signal[*Widget]
	Moved              Signal[Point]
	Resized            Signal[Area]
	MousePressed       Signal[tea.MouseMsg]
	MouseReleased      Signal[tea.MouseMsg]
	MouseDoubleClicked Signal[tea.MouseMsg]
	MouseMoved         Signal[tea.MouseMsg]
	KeyPressed         Signal[tea.KeyMsg]
	KeyReleased        Signal[tea.KeyMsg]
	FocusedIn          Notify
	FocusedOut         Notify
	Deleted            Notify
	Painted            Notify
	Timer              Notify
	Destroyed          Signal[*Widget]
}

func (s *Signals) emit(w *Widget, ev Event) {
	switch ev.Kind {
	case EventEnable:
		s.Enabled.Emit(struct{}{})
	case EventDisable:
		s.Disabled.Emit(struct{}{})
	case EventChildAdded:
		s.ChildAdded.Emit(ev.Child)
	case EventChildRemoved:
		s.ChildRemoved.Emit(ev.Child)
	case EventChildPolished:
		s.ChildPolished.Emit(ev.Child)
	case EventMove:
		s.Moved.Emit(ev.Point)
	case EventResize:
		s.Resized.Emit(ev.Area)
	case EventMousePress:
		s.MousePressed.Emit(ev.Mouse)
	case EventMouseRelease:
		s.MouseReleased.Emit(ev.Mouse)
	case EventMouseDoubleClick:
		s.MouseDoubleClicked.Emit(ev.Mouse)
	case EventMouseMove:
		s.MouseMoved.Emit(ev.Mouse)
	case EventKeyPress:
		s.KeyPressed.Emit(ev.Key)
	case EventKeyRelease:
		s.KeyReleased.Emit(ev.Key)
	case EventFocusIn:
		s.FocusedIn.Emit(struct{}{})
	case EventFocusOut:
		s.FocusedOut.Emit(struct{}{})
	case EventDelete:
		s.Deleted.Emit(struct{}{})
	case EventPaint:
		s.Painted.Emit(struct{}{})
	case EventTimer:
		s.Timer.Emit(struct{}{})
	case EventDestroy:
		s.Destroyed.Emit(w)
	}
}
