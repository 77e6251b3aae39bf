// script_lua.go - Lua scripting host for NXMock

/*
script_lua.go - Lua Script Host

Demo and test scripts drive the machine from Lua through an `nx`
module. A script may define a global `frame(n)` function; the run loop
calls it once per hardware tick with the running frame number, so
scripts can animate the border, page banks or stream Layer 2 data
without recompiling anything.
*/

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

// ScriptHost owns a Lua state bound to one machine.
type ScriptHost struct {
	machine *Machine
	state   *lua.LState
	frameFn lua.LValue
}

// NewScriptHost creates a Lua state with the nx module preloaded.
func NewScriptHost(m *Machine) *ScriptHost {
	h := &ScriptHost{machine: m, state: lua.NewState()}
	h.state.PreloadModule("nx", h.loader)
	return h
}

// Close shuts the Lua state down.
func (h *ScriptHost) Close() {
	h.state.Close()
}

// LoadFile compiles and runs a script file, then captures its global
// frame function if one was defined.
func (h *ScriptHost) LoadFile(path string) error {
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	h.captureFrameFn()
	log.WithField("path", path).Info("script loaded")
	return nil
}

// LoadString runs script source from memory.
func (h *ScriptHost) LoadString(src string) error {
	if err := h.state.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	h.captureFrameFn()
	return nil
}

func (h *ScriptHost) captureFrameFn() {
	fn := h.state.GetGlobal("frame")
	if fn != lua.LNil {
		h.frameFn = fn
	}
}

// Frame invokes the script's frame(n) callback when one exists.
func (h *ScriptHost) Frame(n uint64) error {
	if h.frameFn == nil {
		return nil
	}
	return h.state.CallByParam(lua.P{
		Fn:      h.frameFn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(n))
}

func (h *ScriptHost) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"peek":     h.luaPeek,
		"poke":     h.luaPoke,
		"peek16":   h.luaPeek16,
		"poke16":   h.luaPoke16,
		"out":      h.luaOut,
		"border":   h.luaBorder,
		"writereg": h.luaWriteReg,
		"pokefile": h.luaPokeFile,
		"loadimg":  h.luaLoadImage,
		"nimread":  h.luaLoadImage,
		"nimwrite": h.luaNimWrite,
		"pngwrite": h.luaScreenshot,
		"redraw":   h.luaRedraw,
	})
	L.Push(mod)
	return 1
}

func (h *ScriptHost) luaPeek(L *lua.LState) int {
	L.Push(lua.LNumber(h.machine.Peek(uint16(L.CheckInt(1)))))
	return 1
}

func (h *ScriptHost) luaPoke(L *lua.LState) int {
	h.machine.Poke(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (h *ScriptHost) luaPeek16(L *lua.LState) int {
	L.Push(lua.LNumber(h.machine.Memory().Peek16(uint16(L.CheckInt(1)))))
	return 1
}

func (h *ScriptHost) luaPoke16(L *lua.LState) int {
	h.machine.Memory().Poke16(uint16(L.CheckInt(1)), uint16(L.CheckInt(2)))
	return 0
}

func (h *ScriptHost) luaOut(L *lua.LState) int {
	h.machine.Out(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (h *ScriptHost) luaBorder(L *lua.LState) int {
	h.machine.Out(NX_PORT_ULA, uint8(L.CheckInt(1)))
	return 0
}

func (h *ScriptHost) luaWriteReg(L *lua.LState) int {
	h.machine.WriteRegister(uint8(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (h *ScriptHost) luaPokeFile(L *lua.LState) int {
	if err := h.machine.PokeFile(L.CheckString(1), uint16(L.CheckInt(2))); err != nil {
		L.RaiseError("pokefile: %v", err)
	}
	return 0
}

func (h *ScriptHost) luaLoadImage(L *lua.LState) int {
	if err := h.machine.LoadLayer2Image(L.CheckString(1)); err != nil {
		L.RaiseError("loadimg: %v", err)
	}
	return 0
}

func (h *ScriptHost) luaNimWrite(L *lua.LState) int {
	if err := h.machine.SaveLayer2NIM(L.CheckString(1)); err != nil {
		L.RaiseError("nimwrite: %v", err)
	}
	return 0
}

func (h *ScriptHost) luaScreenshot(L *lua.LState) int {
	name, err := h.machine.Screenshot()
	if err != nil {
		L.RaiseError("pngwrite: %v", err)
	}
	L.Push(lua.LString(name))
	return 1
}

func (h *ScriptHost) luaRedraw(L *lua.LState) int {
	h.machine.RequestRedraw()
	return 0
}
