//go:build deadlock

package syncutils

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// RWMutex is a deadlock detecting reader/writer mutual exclusion lock.
type RWMutex struct {
	deadlock.RWMutex
}

func init() {
	deadlock.Opts.DeadlockTimeout = 20 * time.Second
}
