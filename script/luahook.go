package script

import (
	lua "github.com/lunixbochs/luaish"
	"github.com/pkg/errors"

	"github.com/hextreeio/microhook/hooks"
)

// luaHook adapts a lua function to the engine's hook interfaces. The
// hook sees a ctx table {num, args[1..8], ret, cpu{...}}; after the
// call the mutable slots are read back out.
type luaHook struct {
	r  *Runtime
	fn *lua.LFunction
}

func (h *luaHook) PreHook(ctx *hooks.Context) (bool, error) {
	L := h.r.L
	tbl := ctxToLua(L, ctx)
	L.Push(h.fn)
	L.Push(tbl)
	if err := L.PCall(1, 1, nil); err != nil {
		return false, errors.Wrapf(hooks.ErrHookFault, "%v", err)
	}
	res := L.Get(-1)
	L.Pop(1)
	luaToCtx(tbl, ctx)
	return !lua.LVIsFalse(res), nil
}

func (h *luaHook) PostHook(ctx *hooks.Context, ret int64) (int64, error) {
	L := h.r.L
	tbl := ctxToLua(L, ctx)
	L.Push(h.fn)
	L.Push(tbl)
	L.Push(lua.LInt(ret))
	if err := L.PCall(2, 1, nil); err != nil {
		return ret, errors.Wrapf(hooks.ErrHookFault, "%v", err)
	}
	res := L.Get(-1)
	L.Pop(1)
	if n, ok := res.(lua.LInt); ok {
		return int64(n), nil
	}
	return ret, nil
}

func ctxToLua(L *lua.LState, ctx *hooks.Context) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("num", lua.LInt(ctx.Num))
	args := L.NewTable()
	for i, a := range ctx.Args {
		args.RawSetInt(i+1, lua.LInt(a))
	}
	tbl.RawSetString("args", args)
	tbl.RawSetString("ret", lua.LInt(ctx.Ret))

	cpu := L.NewTable()
	if s := ctx.Cpu; s != nil {
		cpu.RawSetString("pc", lua.LInt(s.PC))
		cpu.RawSetString("sp", lua.LInt(s.SP))
		for _, rv := range s.Named {
			cpu.RawSetString(rv.Name, lua.LInt(rv.Val))
		}
		regs := L.NewTable()
		for i, v := range s.Regs {
			regs.RawSetInt(i+1, lua.LInt(v))
		}
		cpu.RawSetString("regs", regs)
	}
	tbl.RawSetString("cpu", cpu)
	return tbl
}

// luaToCtx copies the mutable ctx slots back out of lua. Argument
// slots holding anything non-integral come back as zero so a confused
// script cannot crash the dispatcher.
func luaToCtx(tbl *lua.LTable, ctx *hooks.Context) {
	if args, ok := tbl.RawGetString("args").(*lua.LTable); ok {
		for i := range ctx.Args {
			ctx.Args[i] = toInt(args.RawGetInt(i + 1))
		}
	} else {
		for i := range ctx.Args {
			ctx.Args[i] = 0
		}
	}
	if v, ok := tbl.RawGetString("ret").(lua.LInt); ok {
		ctx.Ret = int64(v)
	}
}

func toInt(v lua.LValue) int64 {
	if n, ok := v.(lua.LInt); ok {
		return int64(n)
	}
	return 0
}
