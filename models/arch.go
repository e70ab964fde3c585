package models

import (
	"fmt"
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

type Reg struct {
	Name string
	Enum int
}

type RegVal struct {
	Reg
	Val uint64
}

type regList []Reg

func (r regList) Len() int           { return len(r) }
func (r regList) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r regList) Less(i, j int) bool { return sortorder.NaturalLess(r[i].Name, r[j].Name) }

// Arch describes a target architecture: its register file and how the
// unicorn backend should be constructed for it.
type Arch struct {
	Name string
	Bits int

	UCArch int
	UCMode int

	PC int
	SP int
	// named registers visible to hook scripts
	Regs map[string]int
	// general purpose registers in ABI order, exposed as the snapshot's
	// register array
	DefaultRegs []string

	OS map[string]*OS

	// sorted for RegList
	regList regList
}

func (a *Arch) String() string {
	return fmt.Sprintf("<Arch %s>", a.Name)
}

func (a *Arch) RegisterOS(os *OS) {
	if a.OS == nil {
		a.OS = make(map[string]*OS)
	}
	if _, ok := a.OS[os.Name]; ok {
		panic("duplicate OS " + os.Name + " for arch " + a.Name)
	}
	os.buildNames()
	a.OS[os.Name] = os
}

// RegList returns the named registers in natural-sort order.
func (a *Arch) RegList() []Reg {
	if a.regList == nil {
		rl := make(regList, 0, len(a.Regs))
		for n, e := range a.Regs {
			rl = append(rl, Reg{Name: n, Enum: e})
		}
		sort.Sort(rl)
		a.regList = rl
	}
	return a.regList
}

// RegEnums returns every register enum the arch knows about, suitable
// for initializing a register file.
func (a *Arch) RegEnums() []int {
	seen := map[int]bool{a.PC: true, a.SP: true}
	enums := []int{a.PC, a.SP}
	for _, e := range a.Regs {
		if !seen[e] {
			seen[e] = true
			enums = append(enums, e)
		}
	}
	return enums
}

// RegDump reads every named register from a Cpu, in RegList order.
func (a *Arch) RegDump(c Cpu) ([]RegVal, error) {
	rl := a.RegList()
	ret := make([]RegVal, len(rl))
	for i, r := range rl {
		val, err := c.RegRead(r.Enum)
		if err != nil {
			return nil, err
		}
		ret[i] = RegVal{r, val}
	}
	return ret, nil
}

// OS carries the parts of a target OS the hook engine needs: the
// syscall name table and the syscall calling convention.
type OS struct {
	Name string

	// number -> canonical name
	Syscalls map[int]string
	// argument registers in ABI order
	SyscallRegs []int
	// register holding the syscall number on entry
	NumReg int
	// register receiving the return value
	RetReg int

	names map[string]int
}

func (o *OS) String() string {
	return fmt.Sprintf("<OS %s>", o.Name)
}

func (o *OS) buildNames() {
	o.names = make(map[string]int, len(o.Syscalls))
	for nr, name := range o.Syscalls {
		o.names[name] = nr
	}
}

// SyscallName returns the canonical name for a syscall number.
func (o *OS) SyscallName(nr int) (string, bool) {
	name, ok := o.Syscalls[nr]
	return name, ok
}

// SyscallNumber resolves a syscall name to its number. The match is
// exact and case-sensitive.
func (o *OS) SyscallNumber(name string) (int, bool) {
	nr, ok := o.names[name]
	return nr, ok
}
