package x86

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

var linuxSyscalls = map[int]string{
	1:   "exit",
	2:   "fork",
	3:   "read",
	4:   "write",
	5:   "open",
	6:   "close",
	7:   "waitpid",
	8:   "creat",
	9:   "link",
	10:  "unlink",
	11:  "execve",
	12:  "chdir",
	13:  "time",
	14:  "mknod",
	15:  "chmod",
	19:  "lseek",
	20:  "getpid",
	23:  "setuid",
	24:  "getuid",
	26:  "ptrace",
	27:  "alarm",
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
	57:  "setpgid",
	60:  "umask",
	63:  "dup2",
	64:  "getppid",
	78:  "gettimeofday",
	85:  "readlink",
	90:  "mmap",
	91:  "munmap",
	102: "socketcall",
	106: "stat",
	108: "fstat",
	114: "wait4",
	122: "uname",
	125: "mprotect",
	145: "readv",
	146: "writev",
	162: "nanosleep",
	174: "rt_sigaction",
	175: "rt_sigprocmask",
	183: "getcwd",
	192: "mmap2",
	195: "stat64",
	197: "fstat64",
	221: "fcntl64",
	224: "gettid",
	240: "futex",
	252: "exit_group",
	265: "clock_gettime",
	295: "openat",
	355: "getrandom",
}

func init() {
	Arch.RegisterOS(&models.OS{
		Name:     "linux",
		Syscalls: linuxSyscalls,
		NumReg:   uc.X86_REG_EAX,
		RetReg:   uc.X86_REG_EAX,
		SyscallRegs: []int{
			uc.X86_REG_EBX, uc.X86_REG_ECX, uc.X86_REG_EDX,
			uc.X86_REG_ESI, uc.X86_REG_EDI, uc.X86_REG_EBP,
		},
	})
}
