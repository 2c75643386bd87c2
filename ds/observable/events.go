package observable

import (
	"github.com/iotaledger/linkedds/event"
	"github.com/iotaledger/linkedds/lo"
	"github.com/iotaledger/linkedds/logger"
	"github.com/iotaledger/linkedds/options"
)

// Action describes the kind of change that was applied to an observed collection.
type Action uint8

const (
	// Added is raised after a value was added.
	Added Action = iota

	// Removed is raised after a value was removed.
	Removed

	// Reset is raised after the collection changed in a way that is not described by a single value (i.e. Clear, moves
	// and swaps).
	Reset
)

// String returns a human-readable representation of the Action.
func (a Action) String() string {
	switch a {
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Reset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// ChangeEvent describes a change of an observed collection.
type ChangeEvent[T any] struct {
	// Action is the kind of change.
	Action Action

	// Value is the value that was added or removed (the zero value for Reset).
	Value T

	// Index is the position of the value in removal order or -1 if it is not known.
	Index int
}

// Events contains the events of an observed collection. They are triggered synchronously after the mutation was fully
// applied.
type Events[T any] struct {
	// CollectionChanged is triggered for every mutation.
	CollectionChanged *event.Event1[*ChangeEvent[T]]

	// CountChanged is triggered with the old and the new count whenever the number of elements changed.
	CountChanged *event.Event2[uint32, uint32]
}

// NewEvents creates a new Events instance.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{
		CollectionChanged: event.New1[*ChangeEvent[T]](),
		CountChanged:      event.New2[uint32, uint32](),
	}
}

// notifier raises the Events of an observed collection.
type notifier[T any] struct {
	events *Events[T]
	log    *logger.Logger
}

func newNotifier[T any](opts []Option) *notifier[T] {
	s := options.Apply(&settings{}, opts)
	if s.log == nil {
		s.log = logger.NewNopLogger()
	}

	return &notifier[T]{
		events: NewEvents[T](),
		log:    s.log,
	}
}

func (n *notifier[T]) notify(action Action, value T, index int, oldCount, newCount uint32) {
	n.log.Debugw("collection changed", "action", action, "index", index, "oldCount", oldCount, "newCount", newCount)

	n.events.CollectionChanged.Trigger(&ChangeEvent[T]{
		Action: action,
		Value:  value,
		Index:  index,
	})

	n.notifyCount(oldCount, newCount)
}

// notifyRemovals raises a Removed notification for every value followed by a single count change.
func (n *notifier[T]) notifyRemovals(values []T, oldCount, newCount uint32) {
	for _, value := range values {
		n.log.Debugw("collection changed", "action", Removed, "index", -1, "oldCount", oldCount, "newCount", newCount)

		n.events.CollectionChanged.Trigger(&ChangeEvent[T]{
			Action: Removed,
			Value:  value,
			Index:  -1,
		})
	}

	n.notifyCount(oldCount, newCount)
}

func (n *notifier[T]) notifyCount(oldCount, newCount uint32) {
	if oldCount != newCount {
		n.events.CountChanged.Trigger(oldCount, newCount)
	}
}

func (n *notifier[T]) notifyReset(oldCount, newCount uint32) {
	n.notify(Reset, lo.Zero[T](), -1, oldCount, newCount)
}

// settings holds the configuration of an observed collection.
type settings struct {
	log *logger.Logger
}

// WithLogger sets the logger that traces the raised notifications on debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// Option is a function that configures an observed collection.
type Option = options.Option[settings]
