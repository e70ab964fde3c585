package hooks

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/hextreeio/microhook/models"
)

// Phase selects which side of the syscall a hook runs on.
type Phase int

const (
	PhasePre Phase = iota
	PhasePost
)

func (p Phase) String() string {
	if p == PhasePre {
		return "pre"
	}
	return "post"
}

// PreHook runs before the syscall executes. It may mutate ctx.Args and
// ctx.Ret; returning true skips the real syscall and makes ctx.Ret the
// syscall's return value.
type PreHook interface {
	PreHook(ctx *Context) (skip bool, err error)
}

// PostHook runs after the syscall (or its suppression) produced ret.
// The returned value replaces ret.
type PostHook interface {
	PostHook(ctx *Context, ret int64) (int64, error)
}

// PreFunc adapts a plain function to PreHook.
type PreFunc func(ctx *Context) bool

func (f PreFunc) PreHook(ctx *Context) (bool, error) { return f(ctx), nil }

// PostFunc adapts a plain function to PostHook.
type PostFunc func(ctx *Context, ret int64) int64

func (f PostFunc) PostHook(ctx *Context, ret int64) (int64, error) { return f(ctx, ret), nil }

// Registry maps syscall numbers to at most one pre-hook and one
// post-hook each. Name identities are resolved against the OS syscall
// table at registration time only; lookup is always by number. One
// mutex guards all mutation.
type Registry struct {
	mu   sync.Mutex
	os   *models.OS
	pre  map[int]PreHook
	post map[int]PostHook
}

func NewRegistry(os *models.OS) *Registry {
	return &Registry{
		os:   os,
		pre:  make(map[int]PreHook),
		post: make(map[int]PostHook),
	}
}

// Resolve maps a syscall identity (int or string name) to its number.
// String matching is exact and case-sensitive.
func (r *Registry) Resolve(id interface{}) (int, error) {
	switch v := id.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		if r.os == nil {
			return 0, errors.Wrapf(ErrInvalidIdentity, "%q (no syscall table)", v)
		}
		nr, ok := r.os.SyscallNumber(v)
		if !ok {
			return 0, errors.Wrapf(ErrInvalidIdentity, "%q", v)
		}
		return nr, nil
	default:
		return 0, errors.Wrapf(ErrInvalidIdentity, "%T", id)
	}
}

// Register binds v to id for the given phase, replacing any existing
// binding. v must be a PreHook / func(*Context) bool for PhasePre, or
// a PostHook / func(*Context, int64) int64 for PhasePost.
func (r *Registry) Register(id interface{}, phase Phase, v interface{}) error {
	nr, err := r.Resolve(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch phase {
	case PhasePre:
		h, err := asPreHook(v)
		if err != nil {
			return err
		}
		r.pre[nr] = h
	case PhasePost:
		h, err := asPostHook(v)
		if err != nil {
			return err
		}
		r.post[nr] = h
	default:
		return errors.Wrapf(ErrInvalidArgument, "phase %d", phase)
	}
	return nil
}

func asPreHook(v interface{}) (PreHook, error) {
	switch h := v.(type) {
	case PreHook:
		return h, nil
	case func(*Context) bool:
		return PreFunc(h), nil
	default:
		return nil, errors.Wrapf(ErrNotCallable, "%T as pre-hook", v)
	}
}

func asPostHook(v interface{}) (PostHook, error) {
	switch h := v.(type) {
	case PostHook:
		return h, nil
	case func(*Context, int64) int64:
		return PostFunc(h), nil
	default:
		return nil, errors.Wrapf(ErrNotCallable, "%T as post-hook", v)
	}
}

// Unregister removes the binding for id+phase. A missing binding is
// not an error; an unresolvable identity still is.
func (r *Registry) Unregister(id interface{}, phase Phase) error {
	nr, err := r.Resolve(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if phase == PhasePre {
		delete(r.pre, nr)
	} else {
		delete(r.post, nr)
	}
	return nil
}

// LookupPre returns the pre-hook bound to a syscall number, if any.
func (r *Registry) LookupPre(nr int) (PreHook, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.pre[nr]
	return h, ok
}

// LookupPost returns the post-hook bound to a syscall number, if any.
func (r *Registry) LookupPost(nr int) (PostHook, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.post[nr]
	return h, ok
}

// Clear atomically releases every binding.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pre = make(map[int]PreHook)
	r.post = make(map[int]PostHook)
}
