package iterator

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ierrors"
)

// Guard tracks the structural version of a container and the number of live iterators over it. Containers embed a
// Guard, report every structural mutation to it and hand it to the iterators they create.
//
// The version only advances while at least one iterator is live and resets to 0 once the last live iterator ended, so
// mutations without iterators cost nothing and stale versions can not alias a future snapshot.
type Guard struct {
	version       uint32
	liveIterators uint32
}

// BeginIteration registers a new live iterator and returns the version it pins.
func (g *Guard) BeginIteration() (pinnedVersion uint32) {
	g.liveIterators++

	return g.version
}

// EndIteration unregisters a live iterator.
func (g *Guard) EndIteration() {
	if g.liveIterators == 0 {
		return
	}

	if g.liveIterators--; g.liveIterators == 0 {
		g.version = 0
	}
}

// NoteMutation records a structural mutation of the container.
func (g *Guard) NoteMutation() {
	if g.liveIterators > 0 {
		g.version++
	}
}

// Version returns the current version of the container.
func (g *Guard) Version() uint32 {
	return g.version
}

// LiveIterators returns the number of iterators that have not been disposed yet.
func (g *Guard) LiveIterators() uint32 {
	return g.liveIterators
}

// Validate returns an error if the given pinned version does not match the current version.
func (g *Guard) Validate(pinnedVersion uint32) error {
	if pinnedVersion != g.version {
		return ierrors.Wrapf(ds.ErrConcurrentModification, "pinned version %d, live version %d", pinnedVersion, g.version)
	}

	return nil
}
