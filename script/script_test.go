package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ierrors"
)

func TestParse(t *testing.T) {
	yamlScript := []byte(`
container: priorityqueue
operations:
  - op: enqueue
    key: 5
    value: a
  - op: dequeue
`)

	script, err := Parse(yamlScript)
	require.NoError(t, err)
	require.Equal(t, ContainerPriorityQueue, script.Container)
	require.Equal(t, []Operation{{Op: "enqueue", Key: 5, Value: "a"}, {Op: "dequeue"}}, script.Operations)

	jsonScript := []byte(`{"container": "queue", "operations": [{"op": "add", "value": "x"}]}`)
	script, err = Parse(jsonScript)
	require.NoError(t, err)
	require.Equal(t, ContainerQueue, script.Container)
	require.Equal(t, []Operation{{Op: "add", Value: "x"}}, script.Operations)

	_, err = Parse([]byte("container: queue\nunknownField: 1\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("container: stack\noperations:\n  - op: push\n    value: a\n"), 0o600))

	script, err := Load(filePath)
	require.NoError(t, err)
	require.Equal(t, ContainerStack, script.Container)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, ierrors.Is(err, os.ErrNotExist))
}

func TestRunner_PriorityQueue(t *testing.T) {
	script := &Script{
		Container: ContainerPriorityQueue,
		Operations: []Operation{
			{Op: "enqueue", Key: 5, Value: "a"},
			{Op: "enqueue", Key: 1, Value: "b"},
			{Op: "enqueue", Key: 5, Value: "c"},
			{Op: "enqueue", Key: 3, Value: "d"},
			{Op: "peek"},
			{Op: "dequeue"},
		},
	}

	result, err := NewRunner().Run(script)
	require.NoError(t, err)
	require.Equal(t, "1:b", result.Steps[4].Output)
	require.Equal(t, "1:b", result.Steps[5].Output)
	require.Equal(t, []string{"3:d", "5:a", "5:c"}, result.Values)
	require.Equal(t, 5, result.Changes)

	script.Operations = append(script.Operations, Operation{Op: "dequeueAll", Key: 5}, Operation{Op: "count"}, Operation{Op: "clear"})

	result, err = NewRunner().Run(script)
	require.NoError(t, err)
	require.Equal(t, "[a c]", result.Steps[6].Output)
	require.Equal(t, "1", result.Steps[7].Output)
	require.Empty(t, result.Values)
	require.Equal(t, 8, result.Changes)
}

func TestRunner_QueueAndStack(t *testing.T) {
	operations := []Operation{
		{Op: "add", Value: "1"},
		{Op: "add", Value: "2"},
		{Op: "add", Value: "3"},
		{Op: "remove"},
		{Op: "count"},
	}

	result, err := NewRunner().Run(&Script{Container: ContainerQueue, Operations: operations})
	require.NoError(t, err)
	require.Equal(t, "1", result.Steps[3].Output)
	require.Equal(t, "2", result.Steps[4].Output)
	require.Equal(t, []string{"2", "3"}, result.Values)
	require.Equal(t, 4, result.Changes)

	result, err = NewRunner().Run(&Script{Container: ContainerStack, Operations: operations})
	require.NoError(t, err)
	require.Equal(t, "3", result.Steps[3].Output)
	require.Equal(t, []string{"2", "1"}, result.Values)
}

func TestRunner_List(t *testing.T) {
	script := &Script{
		Container: ContainerList,
		Operations: []Operation{
			{Op: "addLast", Value: "b"},
			{Op: "addFirst", Value: "a"},
			{Op: "addAfter", Value: "c", Other: "b"},
			{Op: "addBefore", Value: "0", Other: "a"},
			{Op: "swap", Value: "0", Other: "c"},
			{Op: "moveToLast", Value: "a"},
			{Op: "moveBefore", Value: "0", Other: "c"},
			{Op: "removeValue", Value: "b"},
			{Op: "peek"},
		},
	}

	result, err := NewRunner().Run(script)
	require.NoError(t, err)
	require.Equal(t, "true", result.Steps[7].Output)
	require.Equal(t, "0", result.Steps[8].Output)
	require.Equal(t, []string{"0", "c", "a"}, result.Values)
}

func TestRunner_Errors(t *testing.T) {
	_, err := NewRunner().Run(&Script{Container: "tree"})
	require.True(t, ierrors.Is(err, ErrUnknownContainer))

	failing := &Script{
		Container: ContainerQueue,
		Operations: []Operation{
			{Op: "remove"},
			{Op: "rotate"},
			{Op: "add", Value: "x"},
		},
	}

	result, err := NewRunner().Run(failing)
	require.True(t, ierrors.Is(err, ds.ErrEmptyContainer))
	require.Len(t, result.Steps, 1)

	failing.ContinueOnError = true
	core, logs := observer.New(zapcore.DebugLevel)

	result, err = NewRunner(WithLogger(zap.New(core).Sugar())).Run(failing)
	require.NoError(t, err)
	require.Len(t, result.Steps, 3)
	require.True(t, ierrors.Is(result.Steps[0].Err, ds.ErrEmptyContainer))
	require.True(t, ierrors.Is(result.Steps[1].Err, ErrUnknownOperation))
	require.Equal(t, []string{"x"}, result.Values)
	require.Len(t, logs.FilterMessage("step failed").All(), 2)
	require.Len(t, logs.FilterMessage("script replayed").All(), 1)
}
