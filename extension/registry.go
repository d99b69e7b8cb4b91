// registry.go holds the process-wide list of extensions.
//
// Extensions call Register from init(), before main() runs, so a duplicate
// name is a programming mistake and panics, the way database/sql.Register
// does. Order of registration is kept so commands and MCP tools appear in
// the same order on every run.

package extension

import "sync"

var (
	mu    sync.RWMutex
	byKey = make(map[string]Extension)
	order []Extension
)

// Register adds e to the registry. It panics if an extension with the same
// name is already registered.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, dup := byKey[name]; dup {
		panic("extension already registered: " + name)
	}
	byKey[name] = e
	order = append(order, e)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()
	return append([]Extension(nil), order...)
}

// Lookup returns the extension registered under name, or nil.
func Lookup(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return byKey[name]
}
