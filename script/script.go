package script

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/iotaledger/linkedds/ierrors"
)

var (
	// ErrUnknownContainer is returned if a Script names a container kind that is not supported.
	ErrUnknownContainer = ierrors.New("unknown container kind")

	// ErrUnknownOperation is returned if a Script contains an operation that the container does not support.
	ErrUnknownOperation = ierrors.New("unknown operation")
)

// Container kinds a Script can be replayed against.
const (
	ContainerQueue         = "queue"
	ContainerStack         = "stack"
	ContainerList          = "list"
	ContainerPriorityQueue = "priorityqueue"
)

// Script is a sequence of Operations that is replayed against a single container.
type Script struct {
	// Container is the kind of container the Operations are applied to.
	Container string `yaml:"container" json:"container"`

	// ContinueOnError keeps replaying the remaining Operations after an Operation failed.
	ContinueOnError bool `yaml:"continueOnError" json:"continueOnError"`

	// Operations are the steps of the Script.
	Operations []Operation `yaml:"operations" json:"operations"`
}

// Operation is a single step of a Script.
type Operation struct {
	// Op is the name of the operation (i.e. "add", "remove", "peek", "clear", "enqueue", "moveToFirst", ...).
	Op string `yaml:"op" json:"op"`

	// Value is the value the operation works with.
	Value string `yaml:"value,omitempty" json:"value,omitempty"`

	// Other is the second value of operations that relate two elements (i.e. "swap", "moveBefore").
	Other string `yaml:"other,omitempty" json:"other,omitempty"`

	// Key is the priority of "enqueue" and "dequeueAll" operations of a priority queue.
	Key int `yaml:"key,omitempty" json:"key,omitempty"`
}

// Parse parses a Script from YAML or JSON.
func Parse(data []byte) (*Script, error) {
	script := new(Script)
	if err := yaml.UnmarshalStrict(data, script); err != nil {
		return nil, ierrors.Wrap(err, "unable to parse script")
	}

	return script, nil
}

// Load reads and parses a Script from a YAML or JSON file.
func Load(filePath string) (*Script, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, ierrors.Wrapf(err, "unable to read script %s", filePath)
	}

	return Parse(data)
}
