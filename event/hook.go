package event

import (
	"github.com/iotaledger/linkedds/ds/list"
	"github.com/iotaledger/linkedds/options"
)

// Hook is a container that holds a trigger function and its trigger settings.
type Hook[TriggerFunc any] struct {
	id      uint64
	event   *event[TriggerFunc]
	element *list.Element[*Hook[TriggerFunc]]
	trigger TriggerFunc

	*triggerSettings
}

// newHook creates a new Hook.
func newHook[TriggerFunc any](id uint64, event *event[TriggerFunc], trigger TriggerFunc, opts ...Option) *Hook[TriggerFunc] {
	return &Hook[TriggerFunc]{
		id:              id,
		event:           event,
		trigger:         trigger,
		triggerSettings: options.Apply(new(triggerSettings), opts),
	}
}

// ID returns the identifier of the Hook.
func (h *Hook[TriggerFunc]) ID() uint64 {
	return h.id
}

// Unhook removes the callback from the event.
func (h *Hook[TriggerFunc]) Unhook() {
	h.event.unhook(h)
}
