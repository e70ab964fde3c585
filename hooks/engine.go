package hooks

import (
	"bytes"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/hextreeio/microhook/models"
)

// Action is a pre-hook's verdict on the pending syscall.
type Action int

const (
	Continue Action = iota
	Skip
)

func (a Action) String() string {
	if a == Skip {
		return "SKIP"
	}
	return "CONTINUE"
}

// Result is what the pre-phase hands back to the dispatcher: the
// verdict, the possibly-rewritten arguments, and the return value to
// use when the verdict is Skip.
type Result struct {
	Action Action
	Args   [NumArgs]int64
	Ret    int64
}

// Engine owns a hook registry and drives the pre/post invocation
// protocol on behalf of the emulator's syscall dispatch. Invocation
// happens synchronously on the dispatching thread; the engine does not
// guard against re-entrant hook invocation, that is the caller's
// responsibility.
type Engine struct {
	cpu  models.Cpu
	arch *models.Arch
	os   *models.OS
	reg  *Registry
	log  hclog.Logger
}

func NewEngine(cpu models.Cpu, arch *models.Arch, os *models.OS, log hclog.Logger) *Engine {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Engine{
		cpu:  cpu,
		arch: arch,
		os:   os,
		reg:  NewRegistry(os),
		log:  log.Named("hooks"),
	}
}

func (e *Engine) Registry() *Registry { return e.reg }
func (e *Engine) Arch() *models.Arch  { return e.arch }
func (e *Engine) OS() *models.OS      { return e.os }

// PreSyscall runs the pre-phase for syscall num. invoked reports
// whether a hook actually ran; the Result is always safe to act on. A
// faulting hook is logged and degrades to "no hook installed": the
// original arguments pass through untouched.
func (e *Engine) PreSyscall(num int, args [NumArgs]int64) (invoked bool, res Result) {
	res = Result{Action: Continue, Args: args}
	h, ok := e.reg.LookupPre(num)
	if !ok {
		return false, res
	}
	ctx := &Context{
		Num:  num,
		Args: args,
		Cpu:  BuildSnapshot(e.cpu, e.arch),
	}
	skip, err := h.PreHook(ctx)
	if err != nil {
		e.log.Warn("pre-hook fault, continuing without hook",
			"syscall", e.syscallName(num), "error", err)
		return false, res
	}
	res.Args = ctx.Args
	if skip {
		res.Action = Skip
		res.Ret = ctx.Ret
	}
	return true, res
}

// PostSyscall runs the post-phase and returns the (possibly
// overridden) return value. A faulting hook is logged and the original
// return value is preserved.
func (e *Engine) PostSyscall(num int, ret int64, args [NumArgs]int64) int64 {
	h, ok := e.reg.LookupPost(num)
	if !ok {
		return ret
	}
	ctx := &Context{
		Num:  num,
		Args: args,
		Ret:  ret,
		Cpu:  BuildSnapshot(e.cpu, e.arch),
	}
	newRet, err := h.PostHook(ctx, ret)
	if err != nil {
		e.log.Warn("post-hook fault, keeping return value",
			"syscall", e.syscallName(num), "error", err)
		return ret
	}
	return newRet
}

func (e *Engine) syscallName(num int) string {
	if e.os != nil {
		if name, ok := e.os.SyscallName(num); ok {
			return name
		}
	}
	return "unknown"
}

// cstringMax bounds the read_cstring scan distance.
const cstringMax = 64 * 1024

const cstringChunk = 256

// memChunk bounds per-probe allocation in MemRead so a hostile length
// fails at the first unmapped byte instead of exhausting host memory.
const memChunk = 1 << 20

// MemRead copies size bytes of guest memory starting at addr. Reads go
// chunk by chunk, so allocation only grows as far as guest memory is
// actually mapped.
func (e *Engine) MemRead(addr uint64, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "read size %d", size)
	}
	hint := size
	if hint > memChunk {
		hint = memChunk
	}
	out := make([]byte, 0, hint)
	for len(out) < size {
		n := size - len(out)
		if n > memChunk {
			n = memChunk
		}
		p, err := e.cpu.MemRead(addr+uint64(len(out)), uint64(n))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidAddress, "read %#x(%d)", addr, size)
		}
		out = append(out, p...)
	}
	return out, nil
}

// MemWrite copies p into guest memory at addr. The whole destination
// range is validated before any byte is written, so a failed write
// never leaves the guest partially modified.
func (e *Engine) MemWrite(addr uint64, p []byte) error {
	// writing nothing always succeeds
	if len(p) == 0 {
		return nil
	}
	if _, err := e.cpu.MemRead(addr, uint64(len(p))); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "write %#x(%d)", addr, len(p))
	}
	if err := e.cpu.MemWrite(addr, p); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "write %#x(%d)", addr, len(p))
	}
	return nil
}

// MemReadCString reads a NUL-terminated guest string starting at addr.
// The scan is chunked and bounded; an unmapped start address or a
// missing terminator within the bound is ErrInvalidAddress.
func (e *Engine) MemReadCString(addr uint64) (string, error) {
	var out []byte
	for len(out) < cstringMax {
		chunk, err := e.cpu.MemRead(addr+uint64(len(out)), cstringChunk)
		if err != nil {
			// a chunk may straddle the end of a mapping; fall back to
			// byte-at-a-time until the terminator or the hard edge
			b, berr := e.cpu.MemRead(addr+uint64(len(out)), 1)
			if berr != nil {
				if len(out) == 0 {
					return "", errors.Wrapf(ErrInvalidAddress, "cstring at %#x", addr)
				}
				return "", errors.Wrapf(ErrInvalidAddress, "unterminated cstring at %#x", addr)
			}
			if b[0] == 0 {
				return string(out), nil
			}
			out = append(out, b[0])
			continue
		}
		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			return string(append(out, chunk[:i]...)), nil
		}
		out = append(out, chunk...)
	}
	return "", errors.Wrapf(ErrInvalidAddress, "unterminated cstring at %#x", addr)
}
