// Package asthrac is the Asthra compiler front-end's driver layer: it
// resolves named compilation units, then runs the lexer/parser/semantic
// analyzer pipeline over each one, independent units running concurrently
// (spec §2 "Driver layer", §5 "Concurrency & resource model").
package asthrac

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/config"
	"github.com/asthra-lang/asthrac/lexer"
	"github.com/asthra-lang/asthrac/parser"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/resolver"
	"github.com/asthra-lang/asthrac/sema"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// Unit is one compiled compilation unit: its resolved name, the AST parsing
// produced (partial, if AllowIncompleteParse let the parser recover past
// errors), and the diagnostics analysis accumulated along the way.
type Unit struct {
	Name    string
	Program *ast.Program
	Handler *reporter.Handler
}

// Failed reports whether u's parse or analysis produced any error-level
// diagnostic (spec §4.C8).
func (u *Unit) Failed() bool { return u.Handler.Failed() }

// Compiler resolves, parses, and semantically analyzes compilation units,
// mirroring the teacher's top-level Compiler/executor split in
// compiler.go, minus the cross-file dependency graph: Asthra units
// (spec §5) have no import-and-link step, so each named unit compiles
// independently and concurrency is a plain bounded fan-out rather than a
// dependency-ordered scheduler.
type Compiler struct {
	// Resolver locates each named unit's source. The only required field.
	Resolver resolver.Resolver
	// Config carries the driver-suppliable knobs (spec §6). A nil Config
	// selects every core default.
	Config *config.Config
	// Reporter, supplied, receives every unit's diagnostics instead of each
	// unit getting its own independent Handler. Useful for a driver that
	// wants one aggregate diagnostic stream across a whole Compile call.
	Reporter *reporter.Handler
	// MaxParallelism bounds concurrent unit compilation. Non-positive
	// selects min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)), mirroring the
	// teacher's own Compiler.MaxParallelism default.
	MaxParallelism int
}

var nextFileID int32

// Compile resolves, parses, and analyzes each named unit. Independent units
// run concurrently, bounded by a weighted semaphore (grounded on the
// teacher's golang.org/x/sync/semaphore usage in its own Compile).
func (c *Compiler) Compile(ctx context.Context, units ...string) ([]*Unit, error) {
	if len(units) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); cpus < par {
			par = cpus
		}
	}
	sem := semaphore.NewWeighted(int64(par))

	if c.Config != nil {
		for alias, path := range c.Config.ModuleAliases {
			symbols.RegisterModuleAlias(alias, path)
		}
	}

	results := make([]*Unit, len(units))
	errs := make([]error, len(units))

	var wg sync.WaitGroup
	for i, name := range units {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			defer sem.Release(1)
			results[i], errs[i] = c.compileOne(name)
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (c *Compiler) compileOne(name string) (*Unit, error) {
	src, err := c.Resolver.FindUnit(name)
	if err != nil {
		return nil, fmt.Errorf("asthrac: resolving unit %q: %w", name, err)
	}

	maxErrors := 0
	allowIncomplete := false
	if c.Config != nil {
		maxErrors = c.Config.MaxErrors
		allowIncomplete = c.Config.AllowIncompleteParse
	}

	handler := c.Reporter
	if handler == nil {
		handler = reporter.NewHandler(maxErrors)
	}

	id := source.FileID(atomic.AddInt32(&nextFileID, 1))
	file := source.NewFile(id, src.Name, src.Data)
	lex := lexer.New(file)
	p := parser.New(lex, handler, parser.Config{AllowIncompleteParse: allowIncomplete})
	prog := p.Parse()

	if !handler.Failed() {
		a := sema.NewAnalyzer(handler, types.NewStore())
		a.Analyze(prog)
	}

	return &Unit{Name: name, Program: prog, Handler: handler}, nil
}
