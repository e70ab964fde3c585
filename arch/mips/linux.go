package mips

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

// o32 numbers (Linux 4000 base).
var linuxSyscalls = map[int]string{
	4001: "exit",
	4002: "fork",
	4003: "read",
	4004: "write",
	4005: "open",
	4006: "close",
	4007: "waitpid",
	4008: "creat",
	4009: "link",
	4010: "unlink",
	4011: "execve",
	4012: "chdir",
	4013: "time",
	4015: "chmod",
	4019: "lseek",
	4020: "getpid",
	4024: "getuid",
	4027: "alarm",
	4029: "pause",
	4033: "access",
	4036: "sync",
	4037: "kill",
	4038: "rename",
	4039: "mkdir",
	4040: "rmdir",
	4041: "dup",
	4042: "pipe",
	4045: "brk",
	4054: "ioctl",
	4060: "umask",
	4063: "dup2",
	4064: "getppid",
	4078: "gettimeofday",
	4085: "readlink",
	4090: "mmap",
	4091: "munmap",
	4114: "wait4",
	4122: "uname",
	4125: "mprotect",
	4145: "readv",
	4146: "writev",
	4188: "poll",
	4194: "rt_sigaction",
	4195: "rt_sigprocmask",
	4203: "getcwd",
	4210: "mmap2",
	4222: "gettid",
	4238: "futex",
	4246: "exit_group",
	4288: "openat",
	4353: "getrandom",
}

func init() {
	Arch.RegisterOS(&models.OS{
		Name:     "linux",
		Syscalls: linuxSyscalls,
		NumReg:   uc.MIPS_REG_V0,
		RetReg:   uc.MIPS_REG_V0,
		SyscallRegs: []int{
			uc.MIPS_REG_A0, uc.MIPS_REG_A1, uc.MIPS_REG_A2,
			uc.MIPS_REG_A3, uc.MIPS_REG_T0, uc.MIPS_REG_T1,
		},
	})
}
