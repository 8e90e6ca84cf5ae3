package script

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Shopify/go-lua"
)

// Runner executes Lua scripts with Vec available.
// Each run uses a fresh state; print writes to Out.
type Runner struct {
	Out    io.Writer
	Logger *log.Logger
}

// RunFile loads and runs the script at path
func (r Runner) RunFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	state := r.newState()
	r.logger().Printf("running %s", path)
	if err := lua.LoadFile(state, path, ""); err != nil {
		return fmt.Errorf("load lua: %s", errorMessage(state, err))
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %s", errorMessage(state, err))
	}
	return nil
}

// RunString runs source as a script
func (r Runner) RunString(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	state := r.newState()
	if err := lua.LoadString(state, source); err != nil {
		return fmt.Errorf("load lua: %s", errorMessage(state, err))
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %s", errorMessage(state, err))
	}
	return nil
}

func (r Runner) newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	Open(state)

	out := r.Out
	if out == nil {
		out = io.Discard
	}
	state.PushGoFunction(printTo(out))
	state.SetGlobal("print")
	return state
}

func (r Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return r.Logger
}

// printTo mirrors Lua's print, converting each argument with tostring
func printTo(out io.Writer) lua.Function {
	return func(state *lua.State) int {
		n := state.Top()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			state.Global("tostring")
			state.PushValue(i)
			state.Call(1, 1)
			s, ok := state.ToString(-1)
			if !ok {
				lua.Errorf(state, "'tostring' must return a string to 'print'")
			}
			parts = append(parts, s)
			state.Pop(1)
		}
		fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}
}

// errorMessage prefers the error value left on the stack by a failed load or call
func errorMessage(state *lua.State, err error) string {
	if msg, ok := state.ToString(-1); ok && msg != "" {
		state.Pop(1)
		return msg
	}
	return err.Error()
}
