package reporter

import (
	"testing"

	"github.com/asthra-lang/asthrac/source"
)

func pos(offset int) source.Pos {
	return source.Pos{File: 0, Line: 1, Column: offset + 1, Offset: offset}
}

func TestHandlerFailedOnlyOnError(t *testing.T) {
	h := NewHandler(0)
	h.Report(NewWarning(CodeNonExhaustiveMatch, pos(0), "match is not exhaustive"))
	if h.Failed() {
		t.Fatal("a handler with only warnings must not be marked failed")
	}
	h.Report(New(CodeTypeMismatch, pos(5), "type mismatch"))
	if !h.Failed() {
		t.Fatal("a handler with an error must be marked failed")
	}
}

func TestHandlerCapsErrorsNotWarnings(t *testing.T) {
	h := NewHandler(2)
	for i := 0; i < 5; i++ {
		h.Report(New(CodeUndefinedSymbol, pos(i), "undefined symbol %d", i))
	}
	for i := 0; i < 5; i++ {
		h.Report(NewWarning(CodeUnusedImport, pos(i), "unused import %d", i))
	}
	if got := h.ErrorCount(); got != 5 {
		t.Fatalf("ErrorCount() = %d, want 5 (counts even dropped ones)", got)
	}
	diags := h.Diagnostics()
	var errs, warns int
	for _, d := range diags {
		if d.Level == Error {
			errs++
		} else {
			warns++
		}
	}
	if errs != 2 {
		t.Fatalf("retained errors = %d, want 2 (capped)", errs)
	}
	if warns != 5 {
		t.Fatalf("retained warnings = %d, want 5 (never capped)", warns)
	}
}

func TestDiagnosticsAreSourceOrdered(t *testing.T) {
	h := NewHandler(0)
	h.Report(New(CodeTypeMismatch, pos(50), "late"))
	h.Report(New(CodeTypeMismatch, pos(5), "early"))
	diags := h.Diagnostics()
	if len(diags) != 2 || diags[0].Message != "early" || diags[1].Message != "late" {
		t.Fatalf("diagnostics must be sorted by source position: %+v", diags)
	}
}

func TestMaxErrorsReached(t *testing.T) {
	h := NewHandler(1)
	if h.MaxErrorsReached() {
		t.Fatal("empty handler must not report cap reached")
	}
	h.Report(New(CodeUndefinedSymbol, pos(0), "x"))
	if !h.MaxErrorsReached() {
		t.Fatal("handler must report cap reached once maxErrors errors are recorded")
	}
}
