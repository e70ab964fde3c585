package arm64

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

// Generic (asm-generic) numbers.
var linuxSyscalls = map[int]string{
	17:  "getcwd",
	23:  "dup",
	24:  "dup3",
	25:  "fcntl",
	29:  "ioctl",
	34:  "mkdirat",
	35:  "unlinkat",
	36:  "symlinkat",
	37:  "linkat",
	43:  "statfs",
	46:  "ftruncate",
	48:  "faccessat",
	49:  "chdir",
	56:  "openat",
	57:  "close",
	61:  "getdents64",
	62:  "lseek",
	63:  "read",
	64:  "write",
	65:  "readv",
	66:  "writev",
	67:  "pread64",
	68:  "pwrite64",
	72:  "pselect6",
	73:  "ppoll",
	78:  "readlinkat",
	79:  "newfstatat",
	80:  "fstat",
	93:  "exit",
	94:  "exit_group",
	96:  "set_tid_address",
	98:  "futex",
	101: "nanosleep",
	113: "clock_gettime",
	129: "kill",
	134: "rt_sigaction",
	135: "rt_sigprocmask",
	160: "uname",
	167: "prctl",
	172: "getpid",
	173: "getppid",
	174: "getuid",
	175: "geteuid",
	176: "getgid",
	177: "getegid",
	178: "gettid",
	198: "socket",
	203: "connect",
	206: "sendto",
	214: "brk",
	215: "munmap",
	216: "mremap",
	220: "clone",
	221: "execve",
	222: "mmap",
	226: "mprotect",
	233: "madvise",
	260: "wait4",
	278: "getrandom",
}

func init() {
	Arch.RegisterOS(&models.OS{
		Name:     "linux",
		Syscalls: linuxSyscalls,
		NumReg:   uc.ARM64_REG_X8,
		RetReg:   uc.ARM64_REG_X0,
		SyscallRegs: []int{
			uc.ARM64_REG_X0, uc.ARM64_REG_X1, uc.ARM64_REG_X2,
			uc.ARM64_REG_X3, uc.ARM64_REG_X4, uc.ARM64_REG_X5,
		},
	})
}
