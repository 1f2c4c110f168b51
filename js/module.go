package js

import (
	"sync"

	"github.com/dop251/goja"
)

const modulePrefix = "biscuit/"

// Module is what a module needs to return
type Module interface {
	Exports() any
}

var (
	mu      sync.RWMutex
	modules = make(map[string]Module)
)

// Register the given mod as an external JavaScript module that can be
// imported by name, the name is prefixed with "biscuit/".
func Register(name string, mod Module) {
	mu.Lock()
	defer mu.Unlock()
	modules[modulePrefix+name] = mod
}

// GetModule returns the module registered with the name.
func GetModule(name string) (Module, bool) {
	mu.RLock()
	defer mu.RUnlock()
	mod, ok := modules[name]
	return mod, ok
}

// EnableRequire set runtime require module
func EnableRequire(vm *goja.Runtime) {
	_ = vm.Set("require", func(name string) goja.Value {
		if mod, ok := GetModule(name); ok {
			return vm.ToValue(mod.Exports())
		}
		return goja.Undefined()
	})
}
