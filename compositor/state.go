package compositor

import "errors"

var (
	// ErrSurfaceUnavailable aborts construction, nothing ever animates
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

	// ErrInvalidState is returned for lifecycle calls out of order
	ErrInvalidState = errors.New("invalid compositor state")
)

// State is the session lifecycle
// Unloaded -> Loading -> Ready -> Animating -> Disposed, Loading -> Disposed on decode failure
type State uint8

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateAnimating
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateAnimating:
		return "animating"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}
