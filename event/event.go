package event

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/linkedds/ds/list"
	"github.com/iotaledger/linkedds/options"
	"github.com/iotaledger/linkedds/syncutils"
)

// event is the generic base type for all events.
type event[TriggerFunc any] struct {
	// hooks holds the callbacks that are currently registered with the event in the order they were hooked.
	hooks *list.List[*Hook[TriggerFunc]]

	// hooksCounter is used to assign a unique ID to each hook.
	hooksCounter atomic.Uint64

	// hooksMutex is used to synchronize access to the hooks.
	hooksMutex syncutils.RWMutex

	// triggerSettings is the settings that are used to trigger the event.
	*triggerSettings
}

// newEvent creates a new event instance with the given options.
func newEvent[TriggerFunc any](opts ...Option) *event[TriggerFunc] {
	return &event[TriggerFunc]{
		hooks:           list.New[*Hook[TriggerFunc]](),
		triggerSettings: options.Apply(new(triggerSettings), opts),
	}
}

// Hook adds a new callback to the event and returns the corresponding Hook.
func (e *event[TriggerFunc]) Hook(triggerFunc TriggerFunc, opts ...Option) *Hook[TriggerFunc] {
	hook := newHook(e.hooksCounter.Inc(), e, triggerFunc, opts...)

	e.hooksMutex.Lock()
	defer e.hooksMutex.Unlock()

	hook.element = e.hooks.AddLast(hook)

	return hook
}

// HookCount returns the number of hooks that are currently registered with the event.
func (e *event[TriggerFunc]) HookCount() int {
	e.hooksMutex.RLock()
	defer e.hooksMutex.RUnlock()

	return int(e.hooks.Count())
}

// unhook removes the given Hook from the event.
func (e *event[TriggerFunc]) unhook(hook *Hook[TriggerFunc]) {
	e.hooksMutex.Lock()
	defer e.hooksMutex.Unlock()

	if hook.element == nil || hook.element.Cleared() {
		return
	}

	_, _ = e.hooks.Remove(hook.element)
}

// triggerHooks calls the given callback for a snapshot of the registered hooks, so hooks can be added or removed by the
// callbacks themselves.
func (e *event[TriggerFunc]) triggerHooks(callback func(hook *Hook[TriggerFunc])) {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooksMutex.RLock()
	hooks := e.hooks.Values()
	e.hooksMutex.RUnlock()

	for _, hook := range hooks {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			continue
		}

		callback(hook)

		if hook.MaxTriggerCountReached() {
			hook.Unhook()
		}
	}
}
