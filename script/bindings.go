package script

import (
	lua "github.com/lunixbochs/luaish"
	luar "github.com/lunixbochs/luaish-luar"

	"github.com/hextreeio/microhook/hooks"
)

func (r *Runtime) loadBindings() error {
	b := &binding{r: r, eng: r.eng}
	L := r.L
	mod := L.SetFuncs(L.NewTable(), b.Exports())

	// the hook verdict is lua truthiness, so these are booleans: a
	// numeric 0 would read as truthy and skip the syscall
	mod.RawSetString("CONTINUE", lua.LFalse)
	mod.RawSetString("SKIP", lua.LTrue)

	syscalls := L.NewTable()
	if os := r.eng.OS(); os != nil {
		for nr, name := range os.Syscalls {
			syscalls.RawSetInt(nr, lua.LString(name))
		}
	}
	mod.RawSetString("SYSCALLS", syscalls)

	L.SetGlobal("microhook", mod)
	L.SetGlobal("engine", luar.New(L, r.eng))
	return nil
}

type binding struct {
	r   *Runtime
	eng *hooks.Engine
}

func (b *binding) Exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"register_pre_hook":    b.RegisterPre,
		"register_post_hook":   b.RegisterPost,
		"unregister_pre_hook":  b.UnregisterPre,
		"unregister_post_hook": b.UnregisterPost,

		"read_memory":  b.ReadMemory,
		"write_memory": b.WriteMemory,
		"read_string":  b.ReadString,
	}
}

func (b *binding) checkErr(err error) {
	if err != nil {
		b.r.L.RaiseError(err.Error())
	}
}

// syscall identities arrive from lua as a number or a name
func (b *binding) identity(L *lua.LState, n int) interface{} {
	switch v := L.CheckAny(n).(type) {
	case lua.LInt:
		return int(v)
	case lua.LString:
		return string(v)
	default:
		L.RaiseError("syscall identity must be a number or name")
		return nil
	}
}

func (b *binding) RegisterPre(L *lua.LState) int {
	id := b.identity(L, 1)
	fn := L.CheckFunction(2)
	b.checkErr(b.eng.Registry().Register(id, hooks.PhasePre, &luaHook{r: b.r, fn: fn}))
	return 0
}

func (b *binding) RegisterPost(L *lua.LState) int {
	id := b.identity(L, 1)
	fn := L.CheckFunction(2)
	b.checkErr(b.eng.Registry().Register(id, hooks.PhasePost, &luaHook{r: b.r, fn: fn}))
	return 0
}

func (b *binding) UnregisterPre(L *lua.LState) int {
	b.checkErr(b.eng.Registry().Unregister(b.identity(L, 1), hooks.PhasePre))
	return 0
}

func (b *binding) UnregisterPost(L *lua.LState) int {
	b.checkErr(b.eng.Registry().Unregister(b.identity(L, 1), hooks.PhasePost))
	return 0
}

func (b *binding) ReadMemory(L *lua.LState) int {
	addr, size := L.CheckUint64(1), L.CheckInt(2)
	mem, err := b.eng.MemRead(addr, size)
	b.checkErr(err)
	L.Push(lua.LString(mem))
	return 1
}

func (b *binding) WriteMemory(L *lua.LState) int {
	addr, data := L.CheckUint64(1), L.CheckString(2)
	b.checkErr(b.eng.MemWrite(addr, []byte(data)))
	return 0
}

func (b *binding) ReadString(L *lua.LState) int {
	addr := L.CheckUint64(1)
	s, err := b.eng.MemReadCString(addr)
	b.checkErr(err)
	L.Push(lua.LString(s))
	return 1
}
