// Package script exposes geometry.Vector3 to Lua scripts as the Vec type.
//
//	local v = Vec(1, 2, 3)      -- omitted components default to 0
//	print(v.x, v:round(0.5), v:format(".2f"))
//	local t = v:as_tuple()      -- {1, 2, 3}
package script

import (
	"fmt"

	"github.com/Shopify/go-lua"
	"github.com/philipparndt/govec/pkg/geometry"
)

const (
	vectorTypeName    = "Vec"
	vectorConstructor = "Vec"
)

// Open registers the Vec type and its global constructor in state
func Open(state *lua.State) {
	registerVectorType(state)
	state.PushGoFunction(vectorNew)
	state.SetGlobal(vectorConstructor)
}

// Push pushes v onto the stack as a Vec. The state must have been opened.
func Push(state *lua.State, v geometry.Vector3) error {
	lua.MetaTableNamed(state, vectorTypeName)
	registered := state.TypeOf(-1) == lua.TypeTable
	state.Pop(1)
	if !registered {
		return geometry.NewError(geometry.CodeConfiguration,
			fmt.Sprintf("lua state has no %s type; call script.Open first", vectorTypeName))
	}

	pushVector(state, v)
	return nil
}

// ToVector3 returns the Vec at index, if there is one
func ToVector3(state *lua.State, index int) (geometry.Vector3, bool) {
	v, ok := state.ToUserData(index).(geometry.Vector3)
	return v, ok
}

func registerVectorType(state *lua.State) {
	lua.NewMetaTable(state, vectorTypeName)
	lua.SetFunctions(state, vectorMetaMethods, 0)
	state.Pop(1)
}

var vectorMetaMethods = []lua.RegistryFunction{
	{Name: "__index", Function: vectorIndex},
	{Name: "__newindex", Function: vectorNewIndex},
	{Name: "__tostring", Function: vectorToString},
}

var vectorMethods = map[string]lua.Function{
	"as_tuple": vectorAsTuple,
	"round":    vectorRound,
	"format":   vectorFormat,
}

func pushVector(state *lua.State, v geometry.Vector3) {
	state.PushUserData(v)
	lua.SetMetaTableNamed(state, vectorTypeName)
}

func checkVector(state *lua.State, index int) geometry.Vector3 {
	ud := lua.CheckUserData(state, index, vectorTypeName)
	if v, ok := ud.(geometry.Vector3); ok {
		return v
	}
	lua.ArgumentError(state, index, "Vec expected")
	return geometry.Vector3{}
}

// raise converts err into a Lua error; it does not return
func raise(state *lua.State, err error) {
	lua.Errorf(state, "%s", err.Error())
}

// luaValue stands in for a Lua value that has no Go numeric counterpart
type luaValue struct {
	typeName string
}

func (v luaValue) TypeName() string {
	return v.typeName
}

func toGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeNumber:
		n, _ := state.ToNumber(index)
		return n
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	}
	return luaValue{typeName: lua.TypeNameOf(state, index)}
}

func vectorNew(state *lua.State) int {
	args := make([]any, state.Top())
	for i := range args {
		args[i] = toGo(state, i+1)
	}

	v, err := geometry.FromValues(args...)
	if err != nil {
		raise(state, err)
		return 0
	}
	pushVector(state, v)
	return 1
}

func vectorIndex(state *lua.State) int {
	v := checkVector(state, 1)
	key, _ := state.ToString(2)

	switch key {
	case "x":
		state.PushNumber(float64(v.X))
	case "y":
		state.PushNumber(float64(v.Y))
	case "z":
		state.PushNumber(float64(v.Z))
	default:
		if method, ok := vectorMethods[key]; ok {
			state.PushGoFunction(method)
		} else {
			state.PushNil()
		}
	}
	return 1
}

func vectorNewIndex(state *lua.State) int {
	checkVector(state, 1)
	key, _ := state.ToString(2)

	switch key {
	case "x", "y", "z":
		lua.Errorf(state, "attribute '%s' of 'Vec' objects is not writable", key)
	default:
		lua.Errorf(state, "'Vec' object has no attribute '%s'", key)
	}
	return 0
}

func vectorToString(state *lua.State) int {
	v := checkVector(state, 1)
	state.PushString(v.String())
	return 1
}

func vectorAsTuple(state *lua.State) int {
	v := checkVector(state, 1)
	tuple := v.AsTuple()

	state.CreateTable(len(tuple), 0)
	for i, c := range tuple {
		state.PushNumber(float64(c))
		state.RawSetInt(-2, i+1)
	}
	return 1
}

func vectorRound(state *lua.State) int {
	v := checkVector(state, 1)
	if state.TypeOf(2) != lua.TypeNumber {
		raise(state, geometry.NewError(geometry.CodeInvalidArgument,
			fmt.Sprintf("round() argument must be real number, not %s", lua.TypeNameOf(state, 2))))
		return 0
	}
	precision, _ := state.ToNumber(2)

	pushVector(state, v.Round(geometry.Scalar(precision)))
	return 1
}

func vectorFormat(state *lua.State) int {
	v := checkVector(state, 1)
	if state.TypeOf(2) != lua.TypeString {
		raise(state, geometry.NewError(geometry.CodeInvalidArgument,
			fmt.Sprintf("format() argument must be str, not %s", lua.TypeNameOf(state, 2))))
		return 0
	}
	spec, _ := state.ToString(2)

	text, err := v.FormatSpec(spec)
	if err != nil {
		raise(state, err)
		return 0
	}
	state.PushString(text)
	return 1
}
