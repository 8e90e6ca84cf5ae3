package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shopify/go-lua"
	"github.com/philipparndt/govec/pkg/geometry"
)

func runScript(t *testing.T, source string) string {
	t.Helper()

	var out bytes.Buffer
	runner := Runner{Out: &out}
	if err := runner.RunString(context.Background(), source); err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	return out.String()
}

func TestVecConstructorDefaults(t *testing.T) {
	out := runScript(t, `
print(Vec())
print(Vec(1))
print(Vec(1, 2))
print(Vec(1, 2, 3))
`)

	expected := "(0.0, 0.0, 0.0)\n(1.0, 0.0, 0.0)\n(1.0, 2.0, 0.0)\n(1.0, 2.0, 3.0)\n"
	if out != expected {
		t.Errorf("script failed: expected %q, got %q", expected, out)
	}
}

func TestVecFields(t *testing.T) {
	out := runScript(t, `
local v = Vec(1.5, -2, 4)
print(v.x, v.y, v.z)
print(v.missing == nil)
`)

	expected := "1.5\t-2\t4\ntrue\n"
	if out != expected {
		t.Errorf("script failed: expected %q, got %q", expected, out)
	}
}

func TestVecFieldsAreReadOnly(t *testing.T) {
	out := runScript(t, `
local v = Vec(1, 2, 3)
local ok, err = pcall(function() v.x = 5 end)
print(ok, err)
print(v.x)
`)

	if !strings.HasPrefix(out, "false\t") {
		t.Fatalf("assignment failed: expected an error, got %q", out)
	}
	if !strings.Contains(out, "attribute 'x' of 'Vec' objects is not writable") {
		t.Fatalf("assignment failed: expected read-only error, got %q", out)
	}
	if !strings.HasSuffix(out, "\n1\n") {
		t.Fatalf("assignment failed: expected x unchanged, got %q", out)
	}
}

func TestVecAsTuple(t *testing.T) {
	out := runScript(t, `
local v = Vec(1, 2, 3)
local t = v:as_tuple()
print(#t, t[1], t[2], t[3])
t[1] = 99
print(v.x)
`)

	expected := "3\t1\t2\t3\n1\n"
	if out != expected {
		t.Errorf("script failed: expected %q, got %q", expected, out)
	}
}

func TestVecRound(t *testing.T) {
	out := runScript(t, `
local v = Vec(1.24, 1.26, 1.75)
print(v:round(0.5))
print(v:round(1))
print(v:format(".2f"))
`)

	expected := "(1.0, 1.5, 2.0)\n(1.0, 1.0, 2.0)\n(1.24, 1.26, 1.75)\n"
	if out != expected {
		t.Errorf("script failed: expected %q, got %q", expected, out)
	}
}

func TestVecFormat(t *testing.T) {
	out := runScript(t, `
print(Vec(1, 2.5, 3.14159):format(".2f"))
print(Vec(1, 2, 3):format(""))
`)

	expected := "(1.00, 2.50, 3.14)\n(1.0, 2.0, 3.0)\n"
	if out != expected {
		t.Errorf("script failed: expected %q, got %q", expected, out)
	}
}

func TestVecErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"string component", `return Vec("a")`, "argument 1 must be real number, not string"},
		{"nil component", `return Vec(1, nil)`, "argument 2 must be real number, not nil"},
		{"table component", `return Vec(1, 2, {})`, "argument 3 must be real number, not table"},
		{"too many", `return Vec(1, 2, 3, 4)`, "function takes at most 3 arguments (4 given)"},
		{"bad spec", `return Vec(1, 2, 3):format("d")`, "Unknown format code 'd' for object of type 'float'"},
		{"spec type", `return Vec(1, 2, 3):format(2)`, "format() argument must be str, not number"},
		{"precision type", `return Vec(1, 2, 3):round("0.5")`, "round() argument must be real number, not string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, `
local ok, err = pcall(function() `+tt.source+` end)
print(ok)
print(err)
`)
			if !strings.HasPrefix(out, "false\n") {
				t.Fatalf("%s failed: expected an error, got %q", tt.name, out)
			}
			if !strings.Contains(out, tt.message) {
				t.Fatalf("%s failed: expected message %q, got %q", tt.name, tt.message, out)
			}
		})
	}
}

func TestPushRequiresOpen(t *testing.T) {
	state := lua.NewState()

	err := Push(state, geometry.New(1, 2, 3))
	if !errors.Is(err, geometry.ErrConfiguration) {
		t.Fatalf("Push failed: expected configuration error, got %v", err)
	}
	if state.Top() != 0 {
		t.Fatalf("Push failed: expected empty stack, got %d values", state.Top())
	}
}

func TestPushAndRead(t *testing.T) {
	state := lua.NewState()
	Open(state)

	v := geometry.New(1, 2, 3)
	if err := Push(state, v); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	got, ok := ToVector3(state, -1)
	if !ok {
		t.Fatal("ToVector3 failed: expected Vec on stack")
	}
	if got != v {
		t.Errorf("ToVector3 failed: expected %v, got %v", v, got)
	}

	state.PushNumber(1)
	if _, ok := ToVector3(state, -1); ok {
		t.Error("ToVector3 failed: expected number not to read as Vec")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.lua")
	source := "print(Vec(1, 2, 3):round(2))\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var out bytes.Buffer
	if err := (Runner{Out: &out}).RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile failed: %v", err)
	}
	if out.String() != "(2.0, 2.0, 4.0)\n" {
		t.Errorf("RunFile failed: expected %q, got %q", "(2.0, 2.0, 4.0)\n", out.String())
	}
}

func TestRunFileErrors(t *testing.T) {
	runner := Runner{}

	err := runner.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	if err == nil || !strings.Contains(err.Error(), "load lua:") {
		t.Errorf("RunFile failed: expected load error, got %v", err)
	}

	err = runner.RunString(context.Background(), `Vec("x")`)
	if err == nil || !strings.Contains(err.Error(), "run lua:") {
		t.Errorf("RunString failed: expected run error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runner.RunString(ctx, `print(1)`); !errors.Is(err, context.Canceled) {
		t.Errorf("RunString failed: expected context.Canceled, got %v", err)
	}
}
