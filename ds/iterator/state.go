package iterator

// State represents the position of an Iterator in its life cycle.
type State uint8

const (
	// NotStarted is the state of an Iterator before the first element has been retrieved.
	NotStarted State = iota

	// Started is the state of an Iterator while it points at an element.
	Started

	// Completed is the state of an Iterator after it moved past the last element.
	Completed

	// Disposed is the terminal state of an Iterator that has been released.
	Disposed
)

// String returns a human-readable version of the State.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Started:
		return "Started"
	case Completed:
		return "Completed"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}
