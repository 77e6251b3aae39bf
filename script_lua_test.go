// script_lua_test.go - Lua script host tests

package main

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func testScriptHost(t *testing.T) (*ScriptHost, *Machine) {
	t.Helper()
	m := testMachine()
	h := NewScriptHost(m)
	t.Cleanup(h.Close)
	return h, m
}

func TestScriptHost_PokeAndOut(t *testing.T) {
	h, m := testScriptHost(t)

	err := h.LoadString(`
		local nx = require("nx")
		nx.poke(0x8000, 42)
		nx.poke16(0x8001, 0xBEEF)
		nx.out(0x00FE, 5)
		nx.writereg(0x12, 9)
	`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	if got := m.Peek(0x8000); got != 42 {
		t.Errorf("Peek(0x8000) = %d, expected 42", got)
	}
	if got := m.Memory().Peek16(0x8001); got != 0xBEEF {
		t.Errorf("Peek16(0x8001) = %#04x, expected 0xbeef", got)
	}
	if m.video.Border != 5 {
		t.Errorf("border = %d, expected 5", m.video.Border)
	}
	if m.video.Layer2.BankStart != 9 {
		t.Errorf("bankStart = %d, expected 9", m.video.Layer2.BankStart)
	}
}

func TestScriptHost_PeekReturnsMemory(t *testing.T) {
	h, m := testScriptHost(t)
	m.Poke(0x9000, 0x5A)

	err := h.LoadString(`
		local nx = require("nx")
		seen = nx.peek(0x9000)
	`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if got := h.state.GetGlobal("seen"); got != lua.LNumber(0x5A) {
		t.Errorf("seen = %v, expected 90", got)
	}
}

func TestScriptHost_FrameCallback(t *testing.T) {
	h, _ := testScriptHost(t)

	err := h.LoadString(`
		local nx = require("nx")
		calls = 0
		last = -1
		function frame(n)
			calls = calls + 1
			last = n
		end
	`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	for n := uint64(1); n <= 3; n++ {
		if err := h.Frame(n); err != nil {
			t.Fatalf("Frame(%d) failed: %v", n, err)
		}
	}
	if got := h.state.GetGlobal("calls"); got != lua.LNumber(3) {
		t.Errorf("calls = %v, expected 3", got)
	}
	if got := h.state.GetGlobal("last"); got != lua.LNumber(3) {
		t.Errorf("last = %v, expected 3", got)
	}
}

func TestScriptHost_FrameWithoutCallbackIsNoop(t *testing.T) {
	h, _ := testScriptHost(t)

	if err := h.LoadString(`local nx = require("nx")`); err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if err := h.Frame(1); err != nil {
		t.Errorf("Frame without callback = %v, expected nil", err)
	}
}

func TestScriptHost_ScriptErrorsPropagate(t *testing.T) {
	h, _ := testScriptHost(t)

	if err := h.LoadString(`this is not lua`); err == nil {
		t.Error("LoadString accepted invalid source")
	}
	err := h.LoadString(`
		local nx = require("nx")
		nx.pokefile("no-such-file.bin", 0)
	`)
	if err == nil {
		t.Error("pokefile of a missing file did not raise")
	}
}
