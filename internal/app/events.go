package app

// EventKind enumerates the inputs the loop reacts to.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventScroll
	EventTick
)

// Key names the actions bound to keyboard keys, independent of the platform
// key codes.
type Key int

const (
	KeyNone Key = iota
	KeyRandomise
	KeyToggleRun
	KeyTemperatureUp
	KeyTemperatureDown
	KeyToggleHUD
	KeyQuit
)

// Event is one platform input or timer notification. X and Y are screen pixel
// coordinates for pointer events; Delta is the scroll amount.
type Event struct {
	Kind  EventKind
	Key   Key
	X, Y  int
	Delta int
}

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyUp:
		return "key-up"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerMove:
		return "pointer-move"
	case EventScroll:
		return "scroll"
	case EventTick:
		return "tick"
	default:
		return "unknown"
	}
}
