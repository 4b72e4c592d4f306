package reporter

import (
	"sort"
	"sync"

	"github.com/rivo/uniseg"
)

// DefaultMaxErrors bounds how many error-level diagnostics a Handler will
// accept before it starts silently dropping them, so a pathological input
// cannot turn one bad file into an unbounded diagnostic list.
const DefaultMaxErrors = 100

// Handler accumulates diagnostics for one compilation unit (spec §4.C8).
// It is safe for concurrent use so a multi-threaded driver can report into
// it from more than one background task (e.g. an async suggestion lookup),
// though the core analyzer itself only ever calls it from its single
// per-unit goroutine (spec §5 "Scheduling model").
type Handler struct {
	mu        sync.Mutex
	maxErrors int
	errors    []*Diagnostic
	warnings  []*Diagnostic
	errorCount int
}

// NewHandler creates a Handler with the given error cap; maxErrors <= 0
// means DefaultMaxErrors.
func NewHandler(maxErrors int) *Handler {
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	return &Handler{maxErrors: maxErrors}
}

// Report records d. Error-level diagnostics beyond the configured maximum
// are silently dropped (spec §4.C8 "Stop accepting new errors after a
// configured maximum"); warnings are never capped.
func (h *Handler) Report(d *Diagnostic) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if d.Level != Error {
		h.warnings = append(h.warnings, d)
		return
	}
	h.errorCount++
	if len(h.errors) >= h.maxErrors {
		return
	}
	h.errors = append(h.errors, d)
}

// MaxErrorsReached reports whether the cap has been hit, so callers can
// stop analysis early rather than continue producing diagnostics that
// will be silently dropped.
func (h *Handler) MaxErrorsReached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errorCount >= h.maxErrors
}

// Failed reports whether any error-level diagnostic was recorded (spec
// §4.C8: "presence of any error-level item marks the unit as failed").
func (h *Handler) Failed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errorCount > 0
}

// ErrorCount returns the total number of error-level diagnostics reported,
// including ones dropped past the cap.
func (h *Handler) ErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errorCount
}

// Diagnostics returns every retained diagnostic, errors and warnings
// together, in stable source order; at equal offsets an error precedes a
// warning (spec §5 "Ordering guarantees": diagnostic order equals source
// order of discovery).
func (h *Handler) Diagnostics() []*Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()

	all := make([]*Diagnostic, 0, len(h.errors)+len(h.warnings))
	all = append(all, h.errors...)
	all = append(all, h.warnings...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Location.Offset < all[j].Location.Offset
	})
	return all
}

// ColumnWidth returns the display width (in terminal cells) of s, using
// Unicode East-Asian-width/combining-mark rules. Used when a caller wants
// to underline a diagnostic's span rather than just point at a column
// index (spec §6 does not mandate rendering, but a driver built on top of
// this core will want it, and protocompile's own width computation is
// grounded on the same library).
func ColumnWidth(s string) int {
	return uniseg.StringWidth(s)
}
