// Package symbols implements Asthra's nested scope chains (spec §3 "Symbol
// table", §4.C6).
package symbols

import (
	"sync"

	"github.com/tidwall/btree"
)

// Table is one lexical scope: an ordered set of entries plus a pointer to
// its enclosing scope. Lookup walks from the innermost scope to the root;
// insertion always targets the scope it is called on.
//
// Within one compilation unit a Table chain is reached only by that unit's
// single analyzer goroutine and needs no locking (spec §5
// "Shared-state discipline"); Table carries an RWMutex all the same. The
// process-wide module-alias registry in aliases.go, where concurrent
// readers genuinely race writers, does not use Table: it is a separate map
// with its own RWMutex.
type Table struct {
	mu      sync.RWMutex
	entries btree.Map[string, *Entry]
	parent  *Table
}

// NewRoot creates a table with no parent, for a compilation unit's
// top-level (package) scope.
func NewRoot() *Table {
	return &Table{}
}

// CreateChild opens a new nested scope under t, per spec §4.C6
// `create_child(parent)`.
func (t *Table) CreateChild() *Table {
	return &Table{parent: t}
}

// Parent returns the enclosing scope, or nil at the root.
func (t *Table) Parent() *Table { return t.parent }

// InsertSafe inserts entry under its own Name into this scope only. It
// reports false (and does not insert) if this scope already has an entry
// by that name — spec §4.C6's duplicate-in-*this*-scope check, which
// intentionally ignores shadowing from an enclosing scope.
func (t *Table) InsertSafe(entry *Entry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries.Get(entry.Name); ok {
		return false
	}
	t.entries.Set(entry.Name, entry)
	return true
}

// LookupLocal looks up name in this scope only, without consulting parents.
func (t *Table) LookupLocal(name string) (*Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries.Get(name)
}

// LookupSafe walks from this scope to the root, returning the first match
// (innermost-shadows-outermost).
func (t *Table) LookupSafe(name string) (*Entry, bool) {
	for scope := t; scope != nil; scope = scope.parent {
		if e, ok := scope.LookupLocal(name); ok {
			return e, true
		}
	}
	return nil, false
}

// Destroy releases every entry in this scope (spec §4.C6 `destroy`). It
// does not touch the parent chain: exiting a block scope must not release
// the function scope it is nested in.
func (t *Table) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = btree.Map[string, *Entry]{}
}

// Len reports how many entries are bound directly in this scope.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries.Len()
}
