// Package script hosts the embedded lua environment hook scripts run
// in, and owns its lifecycle: start once, shutdown idempotently.
package script

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"
	lua "github.com/lunixbochs/luaish"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/hextreeio/microhook/hooks"
)

// Runtime binds a lua state to a hook engine. Start may be called at
// most once per Runtime; Shutdown is the single release path for the
// lua state and every hook binding, and also runs on Start failure.
type Runtime struct {
	mu      sync.Mutex
	L       *lua.LState
	eng     *hooks.Engine
	log     hclog.Logger
	started bool
	active  bool
}

func NewRuntime(eng *hooks.Engine, log hclog.Logger) *Runtime {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Runtime{eng: eng, log: log.Named("script")}
}

// Start brings up the lua state, installs the microhook bindings, runs
// any user init.lua, then executes the entry script (which performs
// the hook registrations). A second call fails regardless of whether
// the first succeeded.
func (r *Runtime) Start(scriptPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return hooks.ErrAlreadyInitialized
	}
	r.started = true

	r.L = lua.NewState()
	if err := r.loadBindings(); err != nil {
		r.shutdownLocked()
		return errors.Wrapf(hooks.ErrInit, "bindings: %v", err)
	}

	if scriptPath != "" {
		// let scripts require() modules that live next to them
		search := filepath.Join(filepath.Dir(scriptPath), "?.lua")
		pp := fmt.Sprintf(`package.path = %q .. ";" .. package.path`, search)
		if err := r.L.DoString(pp); err != nil {
			r.shutdownLocked()
			return errors.Wrapf(hooks.ErrInit, "package.path: %v", err)
		}
	}

	configDirs := configdir.New("microhook", "script")
	for _, config := range configDirs.QueryFolders(configdir.All) {
		if data, err := config.ReadFile("init.lua"); err == nil {
			if err := r.L.DoString(string(data)); err != nil {
				r.log.Warn("error while running init.lua", "error", err)
			}
		}
	}

	if scriptPath != "" {
		if err := r.L.DoFile(scriptPath); err != nil {
			r.shutdownLocked()
			return errors.Wrapf(hooks.ErrInit, "%v", err)
		}
	}
	r.active = true
	return nil
}

// Shutdown releases every hook binding and the lua state. Safe to call
// any number of times, before or after Start.
func (r *Runtime) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdownLocked()
}

func (r *Runtime) shutdownLocked() {
	if r.eng != nil {
		r.eng.Registry().Clear()
	}
	if r.L != nil {
		r.L.Close()
		r.L = nil
	}
	r.active = false
}

// Active reports whether Start succeeded and Shutdown has not run.
func (r *Runtime) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Engine returns the hook engine the runtime drives.
func (r *Runtime) Engine() *hooks.Engine { return r.eng }
