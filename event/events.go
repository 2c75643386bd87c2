package event

// region Event1 ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Event1 is an event with a single parameter.
type Event1[T1 any] struct {
	*event[func(T1)]
}

// New1 creates a new event with a single parameter.
func New1[T1 any](opts ...Option) *Event1[T1] {
	return &Event1[T1]{
		event: newEvent[func(T1)](opts...),
	}
}

// Trigger invokes the hooked callbacks with the given parameter.
func (e *Event1[T1]) Trigger(arg1 T1) {
	e.triggerHooks(func(hook *Hook[func(T1)]) {
		hook.trigger(arg1)
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Event2 ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Event2 is an event with two parameters.
type Event2[T1, T2 any] struct {
	*event[func(T1, T2)]
}

// New2 creates a new event with two parameters.
func New2[T1, T2 any](opts ...Option) *Event2[T1, T2] {
	return &Event2[T1, T2]{
		event: newEvent[func(T1, T2)](opts...),
	}
}

// Trigger invokes the hooked callbacks with the given parameters.
func (e *Event2[T1, T2]) Trigger(arg1 T1, arg2 T2) {
	e.triggerHooks(func(hook *Hook[func(T1, T2)]) {
		hook.trigger(arg1, arg2)
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
