package arm

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

// EABI numbers.
var linuxSyscalls = map[int]string{
	1:   "exit",
	2:   "fork",
	3:   "read",
	4:   "write",
	5:   "open",
	6:   "close",
	8:   "creat",
	9:   "link",
	10:  "unlink",
	11:  "execve",
	12:  "chdir",
	19:  "lseek",
	20:  "getpid",
	23:  "setuid",
	24:  "getuid",
	26:  "ptrace",
	29:  "pause",
	33:  "access",
	36:  "sync",
	37:  "kill",
	38:  "rename",
	39:  "mkdir",
	40:  "rmdir",
	41:  "dup",
	42:  "pipe",
	45:  "brk",
	54:  "ioctl",
	60:  "umask",
	63:  "dup2",
	64:  "getppid",
	78:  "gettimeofday",
	85:  "readlink",
	91:  "munmap",
	114: "wait4",
	122: "uname",
	125: "mprotect",
	143: "flock",
	145: "readv",
	146: "writev",
	162: "nanosleep",
	168: "poll",
	174: "rt_sigaction",
	175: "rt_sigprocmask",
	183: "getcwd",
	190: "vfork",
	192: "mmap2",
	195: "stat64",
	197: "fstat64",
	220: "madvise",
	224: "gettid",
	240: "futex",
	248: "exit_group",
	263: "clock_gettime",
	322: "openat",
	384: "getrandom",
}

func init() {
	Arch.RegisterOS(&models.OS{
		Name:     "linux",
		Syscalls: linuxSyscalls,
		NumReg:   uc.ARM_REG_R7,
		RetReg:   uc.ARM_REG_R0,
		SyscallRegs: []int{
			uc.ARM_REG_R0, uc.ARM_REG_R1, uc.ARM_REG_R2,
			uc.ARM_REG_R3, uc.ARM_REG_R4, uc.ARM_REG_R5,
		},
	})
}
