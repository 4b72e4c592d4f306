//go:build asthrac_debug

package sema

import (
	"sync/atomic"

	"github.com/petermattis/goid"
)

// debugGuard catches an Analyzer whose Analyze is re-entered from a second
// goroutine while already active, enforcing spec §5's "within one file
// analysis is single-threaded" invariant. Only built with -tags
// asthrac_debug, the same opt-in convention the teacher's internal test
// helpers use goid for (labeling goroutine-local state in internal/golden
// and internal/corpora).
type debugGuard struct {
	active atomic.Int64
}

func (g *debugGuard) enter() {
	id := goid.Get()
	if !g.active.CompareAndSwap(0, id) {
		panic("sema: Analyzer.Analyze re-entered from a different goroutine")
	}
}

func (g *debugGuard) exit() {
	g.active.Store(0)
}
