// registry.go holds the process-wide list of extensions.
//
// Extensions add themselves from init() in their own package, so the set is
// fixed before main runs. Command and MCP tool order follows registration
// order, which follows import order in extension/all.

package extension

import (
	"slices"
	"sync"
)

var reg struct {
	sync.RWMutex
	exts   []Extension
	byName map[string]int // index into exts
}

// Register adds e to the registry. A second extension with the same name
// is a programming error and panics, as database/sql.Register does.
func Register(e Extension) {
	reg.Lock()
	defer reg.Unlock()

	name := e.Name()
	if _, dup := reg.byName[name]; dup {
		panic("extension already registered: " + name)
	}
	if reg.byName == nil {
		reg.byName = make(map[string]int)
	}
	reg.byName[name] = len(reg.exts)
	reg.exts = append(reg.exts, e)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	reg.RLock()
	defer reg.RUnlock()
	return slices.Clone(reg.exts)
}

// Get returns the extension called name, or nil.
func Get(name string) Extension {
	reg.RLock()
	defer reg.RUnlock()
	i, ok := reg.byName[name]
	if !ok {
		return nil
	}
	return reg.exts[i]
}

// Names lists registered extension names in registration order.
func Names() []string {
	reg.RLock()
	defer reg.RUnlock()
	names := make([]string, len(reg.exts))
	for i, e := range reg.exts {
		names[i] = e.Name()
	}
	return names
}
