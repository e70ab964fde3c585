package hooks

// NumArgs is the fixed argument arity of every syscall context,
// independent of the syscall's true arity. Unused trailing slots carry
// whatever the calling convention left in the argument registers.
const NumArgs = 8

// Context is the per-invocation record handed to a hook. Args and Ret
// may be mutated by a pre-hook; Cpu is a read-only snapshot taken just
// before the hook ran. A Context is only valid for the duration of the
// hook call that received it; retaining one past that is unsupported.
type Context struct {
	Num  int
	Args [NumArgs]int64
	Ret  int64
	Cpu  *Snapshot
}
