package hooks

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hextreeio/microhook/models"
)

func testOS() *models.OS {
	arch := &models.Arch{Name: "toy", Bits: 64}
	os := &models.OS{
		Name:        "linux",
		Syscalls:    map[int]string{0: "read", 1: "write", 60: "exit"},
		SyscallRegs: []int{},
	}
	arch.RegisterOS(os)
	return os
}

func TestRegisterByNameAndNumber(t *testing.T) {
	r := NewRegistry(testOS())
	h := func(ctx *Context) bool { return false }

	require.NoError(t, r.Register("write", PhasePre, h))
	byName, ok := r.LookupPre(1)
	require.True(t, ok)

	require.NoError(t, r.Register(1, PhasePre, h))
	byNum, ok := r.LookupPre(1)
	require.True(t, ok)

	// both paths bind under the same number
	assert.IsType(t, byName, byNum)
}

func TestRegisterInvalidIdentity(t *testing.T) {
	r := NewRegistry(testOS())
	h := func(ctx *Context) bool { return false }

	err := r.Register("Write", PhasePre, h) // case-sensitive
	assert.True(t, errors.Is(err, ErrInvalidIdentity))

	err = r.Register("no_such_syscall", PhasePre, h)
	assert.True(t, errors.Is(err, ErrInvalidIdentity))

	err = r.Register(3.14, PhasePre, h)
	assert.True(t, errors.Is(err, ErrInvalidIdentity))
}

func TestRegisterNotCallable(t *testing.T) {
	r := NewRegistry(testOS())

	err := r.Register(0, PhasePre, "not a function")
	assert.True(t, errors.Is(err, ErrNotCallable))

	// a post-shaped func is not a valid pre-hook
	err = r.Register(0, PhasePre, func(ctx *Context, ret int64) int64 { return ret })
	assert.True(t, errors.Is(err, ErrNotCallable))

	err = r.Register(0, PhasePost, func(ctx *Context) bool { return false })
	assert.True(t, errors.Is(err, ErrNotCallable))
}

func TestReplaceBinding(t *testing.T) {
	r := NewRegistry(testOS())
	calls := []string{}

	require.NoError(t, r.Register(0, PhasePre, func(ctx *Context) bool {
		calls = append(calls, "first")
		return false
	}))
	require.NoError(t, r.Register("read", PhasePre, func(ctx *Context) bool {
		calls = append(calls, "second")
		return false
	}))

	h, ok := r.LookupPre(0)
	require.True(t, ok)
	_, err := h.PreHook(&Context{})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, calls)
}

func TestUnregisterMissingIsNoop(t *testing.T) {
	r := NewRegistry(testOS())
	assert.NoError(t, r.Unregister(999, PhasePre))
	assert.NoError(t, r.Unregister("exit", PhasePost))
}

func TestUnregisterRemoves(t *testing.T) {
	r := NewRegistry(testOS())
	require.NoError(t, r.Register("exit", PhasePre, func(ctx *Context) bool { return true }))
	require.NoError(t, r.Unregister(60, PhasePre))
	_, ok := r.LookupPre(60)
	assert.False(t, ok)
}

func TestClearReleasesAll(t *testing.T) {
	r := NewRegistry(testOS())
	require.NoError(t, r.Register(0, PhasePre, func(ctx *Context) bool { return false }))
	require.NoError(t, r.Register(0, PhasePost, func(ctx *Context, ret int64) int64 { return ret }))
	r.Clear()
	_, ok := r.LookupPre(0)
	assert.False(t, ok)
	_, ok = r.LookupPost(0)
	assert.False(t, ok)
}
