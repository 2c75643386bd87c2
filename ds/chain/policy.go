package chain

// Policy determines on which end of a Chain new values are woven in. Values are always removed from the front.
type Policy uint8

const (
	// FIFO appends new values behind the last Node (queue discipline).
	FIFO Policy = iota

	// LIFO prepends new values in front of the first Node (stack discipline).
	LIFO
)

// String returns a human-readable version of the Policy.
func (p Policy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	default:
		return "Unknown"
	}
}
