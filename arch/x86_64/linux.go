package x86_64

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

var linuxSyscalls = map[int]string{
	0:   "read",
	1:   "write",
	2:   "open",
	3:   "close",
	4:   "stat",
	5:   "fstat",
	6:   "lstat",
	7:   "poll",
	8:   "lseek",
	9:   "mmap",
	10:  "mprotect",
	11:  "munmap",
	12:  "brk",
	13:  "rt_sigaction",
	14:  "rt_sigprocmask",
	15:  "rt_sigreturn",
	16:  "ioctl",
	17:  "pread64",
	18:  "pwrite64",
	19:  "readv",
	20:  "writev",
	21:  "access",
	22:  "pipe",
	23:  "select",
	24:  "sched_yield",
	25:  "mremap",
	28:  "madvise",
	32:  "dup",
	33:  "dup2",
	34:  "pause",
	35:  "nanosleep",
	37:  "alarm",
	39:  "getpid",
	41:  "socket",
	42:  "connect",
	43:  "accept",
	44:  "sendto",
	45:  "recvfrom",
	46:  "sendmsg",
	47:  "recvmsg",
	48:  "shutdown",
	49:  "bind",
	50:  "listen",
	51:  "getsockname",
	54:  "setsockopt",
	55:  "getsockopt",
	56:  "clone",
	57:  "fork",
	58:  "vfork",
	59:  "execve",
	60:  "exit",
	61:  "wait4",
	62:  "kill",
	63:  "uname",
	72:  "fcntl",
	73:  "flock",
	74:  "fsync",
	76:  "truncate",
	77:  "ftruncate",
	78:  "getdents",
	79:  "getcwd",
	80:  "chdir",
	82:  "rename",
	83:  "mkdir",
	84:  "rmdir",
	85:  "creat",
	86:  "link",
	87:  "unlink",
	88:  "symlink",
	89:  "readlink",
	90:  "chmod",
	92:  "chown",
	95:  "umask",
	96:  "gettimeofday",
	97:  "getrlimit",
	102: "getuid",
	104: "getgid",
	107: "geteuid",
	108: "getegid",
	110: "getppid",
	158: "arch_prctl",
	186: "gettid",
	201: "time",
	202: "futex",
	218: "set_tid_address",
	228: "clock_gettime",
	231: "exit_group",
	257: "openat",
	262: "newfstatat",
	318: "getrandom",
}

func init() {
	Arch.RegisterOS(&models.OS{
		Name:     "linux",
		Syscalls: linuxSyscalls,
		NumReg:   uc.X86_REG_RAX,
		RetReg:   uc.X86_REG_RAX,
		SyscallRegs: []int{
			uc.X86_REG_RDI, uc.X86_REG_RSI, uc.X86_REG_RDX,
			uc.X86_REG_R10, uc.X86_REG_R8, uc.X86_REG_R9,
		},
	})
}
