// Package js a small goja runtime with the registered biscuit modules,
// scripts reach the shared cookie store through require.
package js

import (
	"context"

	"github.com/dop251/goja"
)

// NewRuntime creates a goja.Runtime with the field name mapper and the
// module require function.
func NewRuntime() *goja.Runtime {
	vm := goja.New()
	vm.SetFieldNameMapper(FieldNameMapper{})
	EnableRequire(vm)
	return vm
}

// RunString executes the given source on a fresh runtime.
// Cancelling the context interrupts the running script.
func RunString(ctx context.Context, source string) (goja.Value, error) {
	vm := NewRuntime()
	done := make(chan struct{}, 1)
	defer func() {
		done <- struct{}{} // End of run
	}()

	go func() {
		select {
		case <-ctx.Done():
			// Interrupt running JavaScript.
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	return vm.RunString(source)
}
