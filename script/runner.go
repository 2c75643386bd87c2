package script

import (
	"fmt"

	"github.com/iotaledger/linkedds/ds/collection"
	"github.com/iotaledger/linkedds/ds/list"
	"github.com/iotaledger/linkedds/ds/observable"
	"github.com/iotaledger/linkedds/ds/priorityqueue"
	"github.com/iotaledger/linkedds/ds/queue"
	"github.com/iotaledger/linkedds/ds/readonly"
	"github.com/iotaledger/linkedds/ds/stack"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/logger"
	"github.com/iotaledger/linkedds/options"
)

// Step is the outcome of a replayed Operation.
type Step struct {
	Operation Operation
	Output    string
	Err       error
}

// Result is the outcome of a replayed Script.
type Result struct {
	// Steps holds the outcome of every replayed Operation.
	Steps []Step

	// Values holds the final contents of the container in removal order.
	Values []string

	// Changes is the number of change notifications that were raised by the container.
	Changes int
}

// Runner replays Scripts.
type Runner struct {
	log *logger.Logger
}

// NewRunner creates a new Runner.
func NewRunner(opts ...options.Option[Runner]) *Runner {
	return options.Apply(&Runner{}, opts, func(r *Runner) {
		if r.log == nil {
			r.log = logger.NewNopLogger()
		}
	})
}

// WithLogger sets the logger the Runner reports the replayed steps to.
func WithLogger(log *logger.Logger) options.Option[Runner] {
	return func(r *Runner) {
		r.log = log
	}
}

// Run replays the Operations of the Script against a new container of the requested kind.
func (r *Runner) Run(script *Script) (*Result, error) {
	target, err := r.newTarget(script.Container)
	if err != nil {
		return nil, err
	}

	result := &Result{Steps: make([]Step, 0, len(script.Operations))}
	target.onChange(func() {
		result.Changes++
	})

	for i, operation := range script.Operations {
		output, stepErr := target.apply(operation)
		result.Steps = append(result.Steps, Step{Operation: operation, Output: output, Err: stepErr})

		if stepErr != nil {
			r.log.Warnw("step failed", "step", i, "op", operation.Op, "err", stepErr)

			if !script.ContinueOnError {
				return result, ierrors.Wrapf(stepErr, "step %d (%s) failed", i, operation.Op)
			}

			continue
		}

		r.log.Debugw("step applied", "step", i, "op", operation.Op, "output", output)
	}

	if result.Values, err = target.values(); err != nil {
		return result, ierrors.Wrap(err, "unable to read the final contents")
	}

	r.log.Infow("script replayed", "container", script.Container, "steps", len(result.Steps), "count", len(result.Values))

	return result, nil
}

func (r *Runner) newTarget(kind string) (target, error) {
	switch kind {
	case ContainerQueue:
		return newContainerTarget(queue.New[string](), r.log), nil
	case ContainerStack:
		return newContainerTarget(stack.New[string](), r.log), nil
	case ContainerList:
		return newListTarget(r.log), nil
	case ContainerPriorityQueue:
		return newPriorityQueueTarget(r.log), nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownContainer, "container %q", kind)
	}
}

// target is a container a Script can be replayed against.
type target interface {
	apply(operation Operation) (output string, err error)
	values() ([]string, error)
	onChange(callback func())
}

// region containerTarget //////////////////////////////////////////////////////////////////////////////////////////////

type containerTarget struct {
	container *observable.Container[string]
	view      *readonly.Container[string]
}

func newContainerTarget(container observable.SequentialContainer[string], log *logger.Logger) *containerTarget {
	observed := observable.NewContainer(container, observable.WithLogger(log))

	return &containerTarget{
		container: observed,
		view:      readonly.NewContainer[string](observed),
	}
}

func (c *containerTarget) apply(operation Operation) (string, error) {
	switch operation.Op {
	case "add", "enqueue", "push":
		c.container.Add(operation.Value)

		return operation.Value, nil
	case "remove", "dequeue", "pop":
		return c.container.Remove()
	case "tryRemove", "tryDequeue", "tryPop":
		value, removed := c.container.TryRemove()

		return fmt.Sprintf("%s %t", value, removed), nil
	case "peek":
		return c.view.Peek()
	case "count":
		return fmt.Sprint(c.view.Count()), nil
	case "clear":
		c.container.Clear()

		return "", nil
	default:
		return "", ierrors.Wrapf(ErrUnknownOperation, "operation %q", operation.Op)
	}
}

func (c *containerTarget) values() ([]string, error) {
	return collection.NewAdapter[string](c.view).ToArray()
}

func (c *containerTarget) onChange(callback func()) {
	c.container.Events().CollectionChanged.Hook(func(*observable.ChangeEvent[string]) { callback() })
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region listTarget ///////////////////////////////////////////////////////////////////////////////////////////////////

type listTarget struct {
	list *observable.List[string]
}

func newListTarget(log *logger.Logger) *listTarget {
	return &listTarget{
		list: observable.NewList(list.New[string](), observable.WithLogger(log)),
	}
}

func (l *listTarget) apply(operation Operation) (string, error) {
	switch operation.Op {
	case "addFirst":
		l.list.AddFirst(operation.Value)

		return operation.Value, nil
	case "add", "addLast":
		l.list.AddLast(operation.Value)

		return operation.Value, nil
	case "addBefore", "addAfter":
		anchor, err := l.find(operation.Other)
		if err != nil {
			return "", err
		}

		if operation.Op == "addBefore" {
			_, err = l.list.AddBefore(anchor, operation.Value)
		} else {
			_, err = l.list.AddAfter(anchor, operation.Value)
		}

		return operation.Value, err
	case "removeFirst":
		return l.list.RemoveFirst()
	case "remove", "removeLast":
		return l.list.RemoveLast()
	case "removeValue":
		_, removed := l.list.RemoveValue(operation.Value)

		return fmt.Sprint(removed), nil
	case "moveToFirst", "moveToLast":
		element, err := l.find(operation.Value)
		if err != nil {
			return "", err
		}

		if operation.Op == "moveToFirst" {
			return operation.Value, l.list.MoveToFirst(element)
		}

		return operation.Value, l.list.MoveToLast(element)
	case "moveBefore", "moveAfter", "swap":
		element, err := l.find(operation.Value)
		if err != nil {
			return "", err
		}

		other, err := l.find(operation.Other)
		if err != nil {
			return "", err
		}

		switch operation.Op {
		case "moveBefore":
			return operation.Value, l.list.MoveBefore(element, other)
		case "moveAfter":
			return operation.Value, l.list.MoveAfter(element, other)
		default:
			return operation.Value, l.list.Swap(element, other)
		}
	case "peek":
		if first := l.list.First(); first != nil {
			return first.Value(), nil
		}

		return "", nil
	case "count":
		return fmt.Sprint(l.list.Count()), nil
	case "clear":
		l.list.Clear()

		return "", nil
	default:
		return "", ierrors.Wrapf(ErrUnknownOperation, "operation %q", operation.Op)
	}
}

func (l *listTarget) find(value string) (*list.Element[string], error) {
	element := l.list.Find(value)
	if element == nil {
		return nil, ierrors.Errorf("value %q not found", value)
	}

	return element, nil
}

func (l *listTarget) values() ([]string, error) {
	return collection.NewAdapter[string](l.list).ToArray()
}

func (l *listTarget) onChange(callback func()) {
	l.list.Events().CollectionChanged.Hook(func(*observable.ChangeEvent[string]) { callback() })
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region priorityQueueTarget //////////////////////////////////////////////////////////////////////////////////////////

type priorityQueueTarget struct {
	queue *observable.PriorityQueue[int, string]
	view  *readonly.PriorityQueue[int, string]
}

func newPriorityQueueTarget(log *logger.Logger) *priorityQueueTarget {
	queue := priorityqueue.New[int, string]()

	return &priorityQueueTarget{
		queue: observable.NewPriorityQueue(queue, observable.WithLogger(log)),
		view:  readonly.NewPriorityQueue(queue),
	}
}

func (p *priorityQueueTarget) apply(operation Operation) (string, error) {
	switch operation.Op {
	case "add", "enqueue":
		p.queue.Enqueue(operation.Key, operation.Value)

		return fmt.Sprintf("%d:%s", operation.Key, operation.Value), nil
	case "remove", "dequeue":
		key, value, err := p.queue.Dequeue()
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d:%s", key, value), nil
	case "dequeueAll":
		return fmt.Sprint(p.queue.DequeueAll(operation.Key)), nil
	case "peek":
		key, value, err := p.view.Peek()
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d:%s", key, value), nil
	case "count":
		return fmt.Sprint(p.view.Count()), nil
	case "clear":
		p.queue.Clear()

		return "", nil
	default:
		return "", ierrors.Wrapf(ErrUnknownOperation, "operation %q", operation.Op)
	}
}

func (p *priorityQueueTarget) values() ([]string, error) {
	items, err := collection.NewAdapter[priorityqueue.Item[int, string]](p.view).ToArray()
	if err != nil {
		return nil, err
	}

	values := make([]string, len(items))
	for i, item := range items {
		values[i] = fmt.Sprintf("%d:%s", item.Key, item.Value)
	}

	return values, nil
}

func (p *priorityQueueTarget) onChange(callback func()) {
	p.queue.Events().CollectionChanged.Hook(func(*observable.ChangeEvent[priorityqueue.Item[int, string]]) { callback() })
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
