package hooks

import "github.com/hextreeio/microhook/models"

// Snapshot is a read-only copy of CPU state at the moment of a
// syscall. PC and SP are always present under those names; Named
// carries the arch's full register file in natural-sort order and
// Regs the general purpose registers in ABI order.
type Snapshot struct {
	PC    uint64
	SP    uint64
	Named []models.RegVal
	Regs  []uint64
}

// BuildSnapshot copies the current register state of cpu into a
// Snapshot. It never fails: a nil or unknown arch produces an empty
// snapshot, and registers the backend cannot read are reported as
// zero, so instrumentation never blocks emulation.
func BuildSnapshot(cpu models.Cpu, arch *models.Arch) *Snapshot {
	s := &Snapshot{}
	if cpu == nil || arch == nil {
		return s
	}
	s.PC = readReg(cpu, arch.PC)
	s.SP = readReg(cpu, arch.SP)
	rl := arch.RegList()
	s.Named = make([]models.RegVal, len(rl))
	for i, r := range rl {
		s.Named[i] = models.RegVal{Reg: r, Val: readReg(cpu, r.Enum)}
	}
	s.Regs = make([]uint64, len(arch.DefaultRegs))
	for i, name := range arch.DefaultRegs {
		if enum, ok := arch.Regs[name]; ok {
			s.Regs[i] = readReg(cpu, enum)
		}
	}
	return s
}

func readReg(cpu models.Cpu, enum int) uint64 {
	val, err := cpu.RegRead(enum)
	if err != nil {
		return 0
	}
	return val
}
