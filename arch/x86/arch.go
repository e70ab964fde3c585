package x86

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

var Arch = &models.Arch{
	Name: "x86",
	Bits: 32,

	UCArch: uc.ARCH_X86,
	UCMode: uc.MODE_32,

	PC: uc.X86_REG_EIP,
	SP: uc.X86_REG_ESP,
	Regs: map[string]int{
		"eax": uc.X86_REG_EAX,
		"ebx": uc.X86_REG_EBX,
		"ecx": uc.X86_REG_ECX,
		"edx": uc.X86_REG_EDX,
		"esi": uc.X86_REG_ESI,
		"edi": uc.X86_REG_EDI,
		"ebp": uc.X86_REG_EBP,
		"esp": uc.X86_REG_ESP,
		"eip": uc.X86_REG_EIP,

		"eflags": uc.X86_REG_EFLAGS,
	},
	DefaultRegs: []string{
		"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp",
	},
}
