package sparc

import (
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/hextreeio/microhook/models"
)

func init() {
	Arch.RegisterOS(&models.OS{
		Name: "linux",
		Syscalls: map[int]string{
			1:   "exit",
			2:   "fork",
			3:   "read",
			4:   "write",
			5:   "open",
			6:   "close",
			7:   "wait4",
			8:   "creat",
			9:   "link",
			10:  "unlink",
			12:  "chdir",
			13:  "chown",
			14:  "mknod",
			15:  "chmod",
			16:  "lchown",
			17:  "brk",
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
			38:  "stat",
			40:  "lstat",
			41:  "dup",
			42:  "pipe",
			43:  "times",
			45:  "umount2",
			46:  "setgid",
			47:  "getgid",
			54:  "ioctl",
			55:  "reboot",
			56:  "mmap2",
			57:  "symlink",
			58:  "readlink",
			59:  "execve",
			60:  "umask",
			61:  "chroot",
			62:  "fstat",
			63:  "fstat64",
			64:  "getpagesize",
			65:  "msync",
			66:  "vfork",
			71:  "mmap",
			73:  "munmap",
			74:  "mprotect",
			75:  "madvise",
			79:  "getgroups",
			80:  "setgroups",
			81:  "getpgrp",
			83:  "setitimer",
			86:  "getitimer",
			88:  "sethostname",
			90:  "dup2",
			92:  "fcntl",
			93:  "select",
			95:  "fsync",
			96:  "setpriority",
			97:  "socket",
			98:  "connect",
			99:  "accept",
			100: "getpriority",
			101: "rt_sigreturn",
			102: "rt_sigaction",
			103: "rt_sigprocmask",
			104: "rt_sigpending",
			105: "rt_sigtimedwait",
			106: "rt_sigqueueinfo",
			107: "rt_sigsuspend",
			117: "getrusage",
			118: "getsockopt",
			120: "readv",
			121: "writev",
			122: "settimeofday",
			123: "fchown",
			124: "fchmod",
			125: "recvfrom",
			126: "setreuid",
			127: "setregid",
			128: "rename",
			129: "truncate",
			130: "ftruncate",
			131: "flock",
			132: "lstat64",
			133: "sendto",
			134: "shutdown",
			135: "socketpair",
			136: "mkdir",
			137: "rmdir",
			138: "utimes",
			139: "stat64",
			140: "sendfile64",
			142: "futex",
			143: "gettid",
			144: "getrlimit",
			145: "setrlimit",
			146: "pivot_root",
			147: "prctl",
			154: "getdents64",
			156: "getdomainname",
			159: "statfs",
			160: "fstatfs",
			167: "poll",
			174: "getdents",
			183: "sigpending",
			188: "exit_group",
			189: "uname",
			190: "init_module",
			191: "personality",
			198: "sigaction",
			199: "sgetmask",
			201: "ssetmask",
			206: "socketcall",
			207: "syslog",
			215: "ipc",
			216: "sigreturn",
			217: "clone",
			222: "delete_module",
			227: "getppid",
			230: "_newselect",
			236: "llseek",
			240: "sched_setscheduler",
			241: "sched_getscheduler",
			242: "sched_yield",
			249: "nanosleep",
			250: "mremap",
			251: "_sysctl",
			253: "fdatasync",
			289: "getcwd",
			340: "set_tid_address",
			347: "getrandom",
		},
		SyscallRegs: []int{
			uc.SPARC_REG_O0, uc.SPARC_REG_O1, uc.SPARC_REG_O2,
			uc.SPARC_REG_O3, uc.SPARC_REG_O4, uc.SPARC_REG_O5,
		},
		NumReg: uc.SPARC_REG_G1,
		RetReg: uc.SPARC_REG_O0,
	})
}
