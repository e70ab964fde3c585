package m68k

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
			8:   "creat",
			9:   "link",
			10:  "unlink",
			11:  "execve",
			12:  "chdir",
			13:  "time",
			14:  "mknod",
			15:  "chmod",
			16:  "chown",
			19:  "lseek",
			20:  "getpid",
			21:  "mount",
			23:  "setuid",
			24:  "getuid",
			26:  "ptrace",
			27:  "alarm",
			29:  "pause",
			30:  "utime",
			33:  "access",
			36:  "sync",
			37:  "kill",
			38:  "rename",
			39:  "mkdir",
			40:  "rmdir",
			41:  "dup",
			42:  "pipe",
			43:  "times",
			45:  "brk",
			46:  "setgid",
			47:  "getgid",
			51:  "acct",
			52:  "umount2",
			54:  "ioctl",
			55:  "fcntl",
			57:  "setpgid",
			60:  "umask",
			61:  "chroot",
			62:  "ustat",
			63:  "dup2",
			64:  "getppid",
			65:  "getpgrp",
			66:  "setsid",
			67:  "sigaction",
			72:  "sigsuspend",
			73:  "sigpending",
			74:  "sethostname",
			75:  "setrlimit",
			76:  "getrlimit",
			77:  "getrusage",
			78:  "gettimeofday",
			79:  "settimeofday",
			80:  "getgroups",
			81:  "setgroups",
			83:  "symlink",
			85:  "readlink",
			88:  "reboot",
			91:  "munmap",
			92:  "truncate",
			93:  "ftruncate",
			94:  "fchmod",
			95:  "fchown",
			96:  "getpriority",
			97:  "setpriority",
			99:  "statfs",
			100: "fstatfs",
			102: "socketcall",
			103: "syslog",
			104: "setitimer",
			105: "getitimer",
			106: "stat",
			107: "lstat",
			108: "fstat",
			114: "wait4",
			116: "sysinfo",
			117: "ipc",
			118: "fsync",
			119: "sigreturn",
			120: "clone",
			122: "uname",
			124: "adjtimex",
			125: "mprotect",
			126: "sigprocmask",
			132: "getpgid",
			133: "fchdir",
			136: "personality",
			140: "_llseek",
			141: "getdents",
			142: "_newselect",
			143: "flock",
			144: "msync",
			145: "readv",
			146: "writev",
			147: "getsid",
			148: "fdatasync",
			150: "mlock",
			151: "munlock",
			152: "mlockall",
			153: "munlockall",
			154: "sched_setparam",
			155: "sched_getparam",
			156: "sched_setscheduler",
			157: "sched_getscheduler",
			158: "sched_yield",
			162: "nanosleep",
			163: "mremap",
			168: "poll",
			174: "rt_sigaction",
			175: "rt_sigprocmask",
			176: "rt_sigpending",
			177: "rt_sigtimedwait",
			178: "rt_sigqueueinfo",
			179: "rt_sigsuspend",
			180: "pread64",
			181: "pwrite64",
			182: "lchown",
			183: "getcwd",
			187: "sendfile",
			191: "ugetrlimit",
			192: "mmap2",
			193: "truncate64",
			194: "ftruncate64",
			195: "stat64",
			196: "lstat64",
			197: "fstat64",
			220: "getdents64",
			221: "gettid",
			235: "futex",
			247: "exit_group",
			248: "lookup_dcookie",
			249: "epoll_create",
			250: "epoll_ctl",
			251: "epoll_wait",
			253: "set_tid_address",
			352: "getrandom",
		},
		SyscallRegs: []int{
			uc.M68K_REG_D1, uc.M68K_REG_D2, uc.M68K_REG_D3,
			uc.M68K_REG_D4, uc.M68K_REG_D5, uc.M68K_REG_A0,
		},
		NumReg: uc.M68K_REG_D0,
		RetReg: uc.M68K_REG_D0,
	})
}
