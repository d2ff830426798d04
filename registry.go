package puflib

import (
	"fmt"
	"strings"
	"sync"
)

// registry mirrors the C implementation's compiled-in, NULL-terminated
// module list (PUFLIB_MODULES): an ordered sequence built at process
// startup and never mutated afterward. Modules append themselves from an
// init() in their own package via Register, which plays the role the C
// linker played for the static array.
var (
	registryMu sync.Mutex
	registry   []Module
)

// Register adds a module to the process-wide registry. It is meant to be
// called from package init() functions of module implementations (see
// modules/echo, modules/counter, ...), never from request-handling code.
// Registering two modules with the same Name() is a build-time bug; runtime
// behavior is first-match-wins, matching puflib_get_module's linear scan.
func Register(m Module) {
	if m == nil {
		panic("puflib: Register called with nil module")
	}
	name := m.Name()
	if name == "" {
		panic("puflib: module has empty name")
	}
	if strings.ContainsAny(name, "/\\\n") {
		panic(fmt.Sprintf("puflib: module name %q contains a path separator or newline", name))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, m)
}

// GetModules returns every registered module, in registration order. The
// returned slice is owned by the caller but aliases no mutable registry
// state - the registry is read-only after startup.
func GetModules() []Module {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Module, len(registry))
	copy(out, registry)
	return out
}

// GetModule looks up a module by exact, case-sensitive name. It returns nil
// if no such module is registered.
func GetModule(name string) Module {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, m := range registry {
		if m.Name() == name {
			return m
		}
	}
	return nil
}
