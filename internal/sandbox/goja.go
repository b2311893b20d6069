package sandbox

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dop251/goja"
)

// evalGoja emulates node's print-expression mode in an embedded VM: console
// output lines first, then the completion value of the program.
func (b *Bridge) evalGoja(ctx context.Context, code string) (string, error) {
	vm := goja.New()

	var out bytes.Buffer
	if err := setupConsole(vm, &out); err != nil {
		return "", &EvalError{Err: err}
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := vm.RunString(code)
	if err != nil {
		return "", &EvalError{Output: err.Error(), Err: err}
	}

	if val == nil {
		val = goja.Undefined()
	}
	fmt.Fprintln(&out, val.String())
	return out.String(), nil
}

func setupConsole(vm *goja.Runtime, out *bytes.Buffer) error {
	console := vm.NewObject()
	print := func(call goja.FunctionCall) goja.Value {
		for i, arg := range call.Arguments {
			if i > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(arg.String())
		}
		out.WriteByte('\n')
		return goja.Undefined()
	}
	for _, level := range []string{"log", "info", "warn", "error"} {
		if err := console.Set(level, print); err != nil {
			return err
		}
	}
	return vm.Set("console", console)
}
