// Package intern provides a string interning table used to give every
// identifier spelling (variable, type, field, module path) a cheap,
// comparable handle instead of repeatedly comparing byte slices (spec §3
// "Identifier interning").
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table]. IDs from different
// Tables are not comparable. The zero value always corresponds to the
// empty string.
type ID int32

func (id ID) String() string {
	if id == 0 {
		return `intern.ID("")`
	}
	return fmt.Sprintf("intern.ID(%d)", int32(id))
}

// Table interns strings to IDs and back. The zero value is empty and
// ready to use; it is safe for concurrent use by multiple goroutines.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern returns the ID for s, assigning it a fresh one on first sight.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}
	// Fast path: s has already been interned. All calls still contend on
	// mu's internal reader count, but avoid ever trapping to the runtime
	// scheduler for a lock that is read far more often than written.
	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return id
	}

	// Clone s: the table is long-lived and must not pin whatever larger
	// buffer (source file bytes, a parser scratch buffer) s was sliced
	// from.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us between RUnlock and Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)
	id = ID(len(t.table)) // ID 0 is reserved for "".
	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id
	return id
}

// Value converts id back into the string it was interned from. Calling it
// with an ID from a different Table is unspecified, and may panic.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}
