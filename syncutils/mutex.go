//go:build !deadlock

package syncutils

import (
	"sync"
)

// RWMutex is a reader/writer mutual exclusion lock. Building with the "deadlock" tag replaces it with a deadlock
// detecting mutex.
type RWMutex struct {
	sync.RWMutex
}
