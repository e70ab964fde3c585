package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hextreeio/microhook/emu"
	"github.com/hextreeio/microhook/hooks"
	"github.com/hextreeio/microhook/models"
)

const (
	tPC = iota + 1
	tSP
	tR0
	tR1
)

func testArch() *models.Arch {
	a := &models.Arch{
		Name: "toy",
		Bits: 64,
		PC:   tPC,
		SP:   tSP,
		Regs: map[string]int{
			"pc": tPC, "sp": tSP, "r0": tR0, "r1": tR1,
		},
		DefaultRegs: []string{"r0", "r1"},
	}
	a.RegisterOS(&models.OS{
		Name:     "linux",
		Syscalls: map[int]string{0: "read", 1: "write", 60: "exit"},
	})
	return a
}

func startScript(t *testing.T, src string) *Runtime {
	t.Helper()
	a := testArch()
	cpu := emu.New(a)
	require.NoError(t, cpu.MemMapProt(0x1000, 0x1000, models.PROT_ALL))
	eng := hooks.NewEngine(cpu, a, a.OS["linux"], nil)
	r := NewRuntime(eng, nil)
	t.Cleanup(r.Shutdown)

	path := filepath.Join(t.TempDir(), "hook.lua")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	require.NoError(t, r.Start(path))
	return r
}

func TestStartTwice(t *testing.T) {
	r := startScript(t, ``)
	assert.True(t, r.Active())
	err := r.Start("")
	assert.True(t, errors.Is(err, hooks.ErrAlreadyInitialized))
}

func TestStartBadScript(t *testing.T) {
	a := testArch()
	eng := hooks.NewEngine(emu.New(a), a, a.OS["linux"], nil)
	r := NewRuntime(eng, nil)

	path := filepath.Join(t.TempDir(), "bad.lua")
	require.NoError(t, os.WriteFile(path, []byte(`this is not lua (`), 0o644))

	err := r.Start(path)
	assert.True(t, errors.Is(err, hooks.ErrInit))
	assert.False(t, r.Active())

	// failed start still counts as the one allowed start
	err = r.Start(path)
	assert.True(t, errors.Is(err, hooks.ErrAlreadyInitialized))
}

func TestShutdownIdempotent(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook("exit", func(ctx) return microhook.SKIP end)
	`)
	_, ok := r.Engine().Registry().LookupPre(60)
	require.True(t, ok)

	r.Shutdown()
	assert.False(t, r.Active())
	_, ok = r.Engine().Registry().LookupPre(60)
	assert.False(t, ok)

	r.Shutdown()
	r.Shutdown()
	assert.False(t, r.Active())
}

func TestSkipWithRet(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook(0, func(ctx)
			ctx.ret = 42
			return microhook.SKIP
		end)
	`)
	eng := r.Engine()
	invoked, res := eng.PreSyscall(0, [hooks.NumArgs]int64{})
	assert.True(t, invoked)
	assert.Equal(t, hooks.Skip, res.Action)
	assert.EqualValues(t, 42, res.Ret)
	assert.EqualValues(t, 42, eng.PostSyscall(0, 42, res.Args))
}

func TestArgMutation(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook("write", func(ctx)
			ctx.args[3] = 0x1234
			return microhook.CONTINUE
		end)
	`)
	invoked, res := r.Engine().PreSyscall(1, [hooks.NumArgs]int64{9, 9, 9, 9})
	assert.True(t, invoked)
	assert.Equal(t, hooks.Continue, res.Action)
	assert.EqualValues(t, 0x1234, res.Args[2])
	assert.EqualValues(t, 9, res.Args[0])
}

func TestNonIntegralArgCoercedToZero(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook(0, func(ctx)
			ctx.args[1] = "not a number"
			ctx.args[2] = 1.5
		end)
	`)
	invoked, res := r.Engine().PreSyscall(0, [hooks.NumArgs]int64{11, 22, 33})
	assert.True(t, invoked)
	assert.EqualValues(t, 0, res.Args[0])
	assert.EqualValues(t, 0, res.Args[1])
	assert.EqualValues(t, 33, res.Args[2])
}

func TestHookFaultFailsOpen(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook(0, func(ctx)
			ctx.args[1] = 999
			error("script exploded")
		end)
	`)
	args := [hooks.NumArgs]int64{5, 6, 7}
	invoked, res := r.Engine().PreSyscall(0, args)
	assert.False(t, invoked)
	assert.Equal(t, hooks.Continue, res.Action)
	assert.Equal(t, args, res.Args)
}

func TestPostOverride(t *testing.T) {
	r := startScript(t, `
		microhook.register_post_hook("read", func(ctx, ret)
			if ret < 0 then return 0 end
			return ret
		end)
	`)
	eng := r.Engine()
	assert.EqualValues(t, 0, eng.PostSyscall(0, -9, [hooks.NumArgs]int64{}))
	assert.EqualValues(t, 17, eng.PostSyscall(0, 17, [hooks.NumArgs]int64{}))
}

func TestPostNonIntegralPreservesRet(t *testing.T) {
	r := startScript(t, `
		microhook.register_post_hook(0, func(ctx, ret)
			return "nope"
		end)
	`)
	assert.EqualValues(t, 55, r.Engine().PostSyscall(0, 55, [hooks.NumArgs]int64{}))
}

func TestCpuSnapshotVisible(t *testing.T) {
	a := testArch()
	cpu := emu.New(a)
	require.NoError(t, cpu.RegWrite(tPC, 0xdead))
	require.NoError(t, cpu.RegWrite(tR1, 7))
	eng := hooks.NewEngine(cpu, a, a.OS["linux"], nil)
	r := NewRuntime(eng, nil)
	t.Cleanup(r.Shutdown)

	path := filepath.Join(t.TempDir(), "snap.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
		microhook.register_pre_hook(0, func(ctx)
			if ctx.cpu.pc == 0xdead and ctx.cpu.r1 == 7 and ctx.cpu.regs[2] == 7 then
				ctx.ret = 1
				return microhook.SKIP
			end
		end)
	`), 0o644))
	require.NoError(t, r.Start(path))

	_, res := eng.PreSyscall(0, [hooks.NumArgs]int64{})
	assert.Equal(t, hooks.Skip, res.Action)
	assert.EqualValues(t, 1, res.Ret)
}

func TestMemoryBindings(t *testing.T) {
	r := startScript(t, `
		microhook.write_memory(0x1100, "hello\0")
		microhook.register_pre_hook("write", func(ctx)
			local s = microhook.read_string(ctx.args[2])
			if s == "hello" then
				ctx.ret = #s
				return microhook.SKIP
			end
		end)
	`)
	invoked, res := r.Engine().PreSyscall(1, [hooks.NumArgs]int64{1, 0x1100, 6})
	assert.True(t, invoked)
	assert.Equal(t, hooks.Skip, res.Action)
	assert.EqualValues(t, 5, res.Ret)
}

func TestUnregisterFromScript(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook("exit", func(ctx) return microhook.SKIP end)
		microhook.unregister_pre_hook("exit")
		microhook.unregister_pre_hook(1234)
	`)
	invoked, _ := r.Engine().PreSyscall(60, [hooks.NumArgs]int64{})
	assert.False(t, invoked)
}

func TestRegisterUnknownNameRaises(t *testing.T) {
	a := testArch()
	eng := hooks.NewEngine(emu.New(a), a, a.OS["linux"], nil)
	r := NewRuntime(eng, nil)
	t.Cleanup(r.Shutdown)

	path := filepath.Join(t.TempDir(), "unknown.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
		microhook.register_pre_hook("no_such_syscall", func(ctx) end)
	`), 0o644))
	err := r.Start(path)
	assert.True(t, errors.Is(err, hooks.ErrInit))
	assert.False(t, r.Active())
}

func TestLuaishDialect(t *testing.T) {
	// the runtime speaks luaish, not stock lua: func/elif/!= must
	// parse, and hook callables are func literals
	r := startScript(t, `
		microhook.register_pre_hook(0, func(ctx)
			if ctx.args[1] != 1 then
				ctx.ret = 1
			elif ctx.args[2] != 2 then
				ctx.ret = 2
			else
				ctx.ret = 3
			end
			return microhook.SKIP
		end)
	`)
	eng := r.Engine()
	_, res := eng.PreSyscall(0, [hooks.NumArgs]int64{1, 2})
	assert.EqualValues(t, 3, res.Ret)
	_, res = eng.PreSyscall(0, [hooks.NumArgs]int64{9, 2})
	assert.EqualValues(t, 1, res.Ret)
	_, res = eng.PreSyscall(0, [hooks.NumArgs]int64{1, 9})
	assert.EqualValues(t, 2, res.Ret)
}

func TestStockLuaKeywordRejected(t *testing.T) {
	a := testArch()
	eng := hooks.NewEngine(emu.New(a), a, a.OS["linux"], nil)
	r := NewRuntime(eng, nil)
	t.Cleanup(r.Shutdown)

	path := filepath.Join(t.TempDir(), "stock.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
		microhook.register_pre_hook(0, function(ctx) end)
	`), 0o644))
	err := r.Start(path)
	assert.True(t, errors.Is(err, hooks.ErrInit))
}

func TestSyscallsTable(t *testing.T) {
	r := startScript(t, `
		microhook.register_pre_hook(0, func(ctx)
			if microhook.SYSCALLS[ctx.num] == "read" then
				return microhook.SKIP
			end
		end)
	`)
	_, res := r.Engine().PreSyscall(0, [hooks.NumArgs]int64{})
	assert.Equal(t, hooks.Skip, res.Action)
}
