package symbols

import "sync"

// aliasRegistry is the process-wide module-alias table (spec §4.C6
// "Module aliases"): many concurrent resolve_module_alias readers, with
// writers (module registration) taking the exclusive path. Lazy
// initialization is guarded by a once-style latch per spec §4.C6, mirroring
// the teacher's linker.Symbols RWMutex discipline and
// grailbio-gql/symbol.Table's singleton-with-lazy-init shape.
var aliasRegistry struct {
	once sync.Once
	mu   sync.RWMutex
	m    map[string]string
}

func initAliasRegistry() {
	aliasRegistry.once.Do(func() {
		aliasRegistry.m = make(map[string]string)
	})
}

// RegisterModuleAlias binds alias to the given module path. Re-registering
// an existing alias to a different path overwrites it; this models a
// driver re-supplying --alias flags, not a source-level redeclaration
// check (those happen at the Table level).
func RegisterModuleAlias(alias, modulePath string) {
	initAliasRegistry()
	aliasRegistry.mu.Lock()
	defer aliasRegistry.mu.Unlock()
	aliasRegistry.m[alias] = modulePath
}

// ResolveModuleAlias walks a single level of indirection: alias -> module
// name, per spec §4.C6. It does not chase an alias that resolves to
// another alias.
func ResolveModuleAlias(alias string) (string, bool) {
	initAliasRegistry()
	aliasRegistry.mu.RLock()
	defer aliasRegistry.mu.RUnlock()
	path, ok := aliasRegistry.m[alias]
	return path, ok
}

// ResetModuleAliasesForTest clears the process-wide registry. It exists
// only so package symbols' own tests can run in isolation from each other;
// production code never calls it.
func ResetModuleAliasesForTest() {
	initAliasRegistry()
	aliasRegistry.mu.Lock()
	defer aliasRegistry.mu.Unlock()
	aliasRegistry.m = make(map[string]string)
}
