// The unicorn Go bindings are cgo-only; this backend is unavailable in
// CGO_ENABLED=0 builds.
//go:build cgo

package emu

import (
	"github.com/pkg/errors"
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

// Unicorn wraps a unicorn-engine instance as a models.Cpu.
type Unicorn struct {
	uc.Unicorn
	arch *models.Arch
}

func NewUnicorn(a *models.Arch) (*Unicorn, error) {
	u, err := uc.NewUnicorn(a.UCArch, a.UCMode)
	if err != nil {
		return nil, errors.Wrap(err, "NewUnicorn() failed")
	}
	return &Unicorn{Unicorn: u, arch: a}, nil
}

func (u *Unicorn) Arch() *models.Arch {
	return u.arch
}

func (u *Unicorn) MemMapProt(addr, size uint64, prot int) error {
	return u.Unicorn.MemMapProt(addr, size, prot)
}

// HookBlock fires cb once per translated basic block.
func (u *Unicorn) HookBlock(cb func(addr uint64, size uint32)) (uc.Hook, error) {
	return u.Unicorn.HookAdd(uc.HOOK_BLOCK, func(_ uc.Unicorn, addr uint64, size uint32) {
		cb(addr, size)
	}, 1, 0)
}

// HookSyscalls fires cb at every syscall entry point for the wrapped
// arch: the SYSCALL instruction on x86_64, software interrupts
// everywhere else (int 0x80, svc, trap).
func (u *Unicorn) HookSyscalls(cb func()) ([]uc.Hook, error) {
	var hooks []uc.Hook
	if u.arch.UCArch == uc.ARCH_X86 && u.arch.UCMode == uc.MODE_64 {
		hh, err := u.Unicorn.HookAdd(uc.HOOK_INSN, func(_ uc.Unicorn) {
			cb()
		}, 1, 0, uc.X86_INS_SYSCALL)
		if err != nil {
			return nil, errors.Wrap(err, "HookAdd(HOOK_INSN) failed")
		}
		hooks = append(hooks, hh)
	}
	hh, err := u.Unicorn.HookAdd(uc.HOOK_INTR, func(_ uc.Unicorn, intno uint32) {
		cb()
	}, 1, 0)
	if err != nil {
		return nil, errors.Wrap(err, "HookAdd(HOOK_INTR) failed")
	}
	return append(hooks, hh), nil
}
