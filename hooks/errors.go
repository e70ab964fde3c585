package hooks

import "github.com/pkg/errors"

var (
	// registration
	ErrInvalidIdentity = errors.New("identity does not resolve to a known syscall")
	ErrNotCallable     = errors.New("value cannot be invoked as a hook")

	// guest memory
	ErrInvalidAddress  = errors.New("invalid guest address")
	ErrInvalidArgument = errors.New("invalid argument")

	// invocation
	ErrHookFault = errors.New("hook fault")

	// lifecycle
	ErrInit               = errors.New("interpreter init failed")
	ErrAlreadyInitialized = errors.New("interpreter already initialized")
	ErrNotInitialized     = errors.New("interpreter not initialized")
)
