// Package emu provides the models.Cpu implementations microhook can
// attach to: a pure-Go sim used by tests, and a unicorn-engine backend
// used by the harness.
package emu

import (
	"github.com/pkg/errors"

	"github.com/hextreeio/microhook/mem"
	"github.com/hextreeio/microhook/models"
)

// Emu is an in-process CPU state holder over a guest memory sim and a
// register file. It does not execute code; it exists so the hook engine
// can be driven without a real emulator attached.
type Emu struct {
	arch *models.Arch
	mask uint64
	sim  *mem.Sim
	regs map[int]uint64
}

func New(a *models.Arch) *Emu {
	e := &Emu{
		arch: a,
		mask: ^uint64(0) >> (64 - uint(a.Bits)),
		sim:  &mem.Sim{},
		regs: make(map[int]uint64),
	}
	for _, enum := range a.RegEnums() {
		e.regs[enum] = 0
	}
	return e
}

func (e *Emu) Arch() *models.Arch {
	return e.arch
}

func (e *Emu) MemMapProt(addr, size uint64, prot int) error {
	if (addr+size)&e.mask != addr+size {
		return errors.New("region outside memory range")
	}
	e.sim.Map(addr, size, prot, true)
	return nil
}

func (e *Emu) MemUnmap(addr, size uint64) error {
	if !e.sim.RangeValid(addr, size) {
		return errors.New("range not mapped")
	}
	e.sim.Unmap(addr, size)
	return nil
}

func (e *Emu) MemRead(addr, size uint64) ([]byte, error) {
	// validate before allocating so a hostile size cannot abort us
	if !e.sim.RangeValid(addr, size) {
		return nil, &mem.Error{Addr: addr, Size: int(size)}
	}
	p := make([]byte, size)
	if err := e.sim.Read(addr, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (e *Emu) MemReadInto(p []byte, addr uint64) error {
	return e.sim.Read(addr, p)
}

func (e *Emu) MemWrite(addr uint64, p []byte) error {
	return e.sim.Write(addr, p)
}

func (e *Emu) RegRead(reg int) (uint64, error) {
	val, ok := e.regs[reg]
	if !ok {
		return 0, errors.New("invalid register")
	}
	return val, nil
}

func (e *Emu) RegWrite(reg int, val uint64) error {
	if _, ok := e.regs[reg]; !ok {
		return errors.New("invalid register")
	}
	e.regs[reg] = val & e.mask
	return nil
}

func (e *Emu) Start(begin, until uint64) error {
	return errors.New("sim cpu cannot execute code")
}

func (e *Emu) Stop() error {
	return nil
}

func (e *Emu) Close() error {
	e.sim = &mem.Sim{}
	e.regs = make(map[int]uint64)
	return nil
}
