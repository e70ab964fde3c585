package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/oklog/ulid/v2"

	"github.com/hextreeio/microhook/arch"
	"github.com/hextreeio/microhook/coverage"
	"github.com/hextreeio/microhook/emu"
	"github.com/hextreeio/microhook/hooks"
	"github.com/hextreeio/microhook/models"
	"github.com/hextreeio/microhook/script"
)

const (
	defaultBase = 0x100000
	stackBase   = 0x7fff0000
	stackSize   = 0x10000
	pageSize    = 0x1000
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "microhook: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("microhook", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: microhook [options] <code file>\n")
		fs.PrintDefaults()
	}
	archName := fs.String("arch", "", "target architecture ("+strings.Join(arch.Names(), " ")+")")
	osName := fs.String("os", "", "target OS")
	scriptPath := fs.String("script", "", "hook script to run")
	covPath := fs.String("coverage", "", "coverage output path (%d date, %s program name, .mhstream suffix for raw stream)")
	cfgPath := fs.String("config", "", "TOML config file")
	base := fs.Uint64("base", 0, "load address for the code file")
	sim := fs.Bool("sim", false, "validate the script against a sim cpu without executing code")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Parse(args)

	cfg := &models.Config{}
	if *cfgPath != "" {
		loaded, err := models.LoadConfig(*cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// explicit flags override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "arch":
			cfg.Arch = *archName
		case "os":
			cfg.OS = *osName
		case "script":
			cfg.Script = *scriptPath
		case "coverage":
			cfg.Coverage = *covPath
		case "base":
			cfg.Base = *base
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if cfg.Arch == "" {
		cfg.Arch = "x86_64"
	}
	if cfg.OS == "" {
		cfg.OS = "linux"
	}
	if cfg.Base == 0 {
		cfg.Base = defaultBase
	}
	if fs.NArg() > 0 {
		cfg.Binary = fs.Arg(0)
	}

	a, osModel, err := arch.GetArch(cfg.Arch, cfg.OS)
	if err != nil {
		return err
	}
	log := newLogger(cfg.Verbose)

	var rec *coverage.Recorder
	if cfg.Coverage != "" {
		rec, err = coverage.NewRecorder(cfg.Coverage, log)
		if err != nil {
			return err
		}
		defer rec.Close()
	}

	if *sim {
		eng := hooks.NewEngine(emu.New(a), a, osModel, log)
		rt := script.NewRuntime(eng, log)
		if err := rt.Start(cfg.Script); err != nil {
			return err
		}
		defer rt.Shutdown()
		log.Info("script ok", "arch", cfg.Arch, "os", cfg.OS)
		return nil
	}

	if cfg.Binary == "" {
		fs.Usage()
		return fmt.Errorf("no code file given")
	}
	code, err := os.ReadFile(cfg.Binary)
	if err != nil {
		return err
	}

	u, err := emu.NewUnicorn(a)
	if err != nil {
		return err
	}
	defer u.Close()

	mapSize := (uint64(len(code)) + pageSize - 1) &^ uint64(pageSize-1)
	if err := u.MemMapProt(cfg.Base, mapSize, models.PROT_ALL); err != nil {
		return err
	}
	if err := u.MemWrite(cfg.Base, code); err != nil {
		return err
	}
	if err := u.MemMapProt(stackBase, stackSize, models.PROT_READ|models.PROT_WRITE); err != nil {
		return err
	}
	if err := u.RegWrite(a.SP, stackBase+stackSize-pageSize); err != nil {
		return err
	}

	eng := hooks.NewEngine(u, a, osModel, log)
	rt := script.NewRuntime(eng, log)
	if err := rt.Start(cfg.Script); err != nil {
		return err
	}
	defer rt.Shutdown()

	if rec != nil {
		rec.SetBinaryInfo(cfg.Binary, cfg.Base, cfg.Base+uint64(len(code)), cfg.Base)
		if _, err := u.HookBlock(rec.RecordBlock); err != nil {
			return err
		}
	}
	if _, err := u.HookSyscalls(func() {
		dispatch(u, osModel, eng, log)
	}); err != nil {
		return err
	}

	log.Info("starting", "binary", cfg.Binary, "arch", cfg.Arch,
		"base", hclog.Fmt("%#x", cfg.Base), "size", len(code))
	if err := u.Start(cfg.Base, cfg.Base+uint64(len(code))); err != nil {
		return err
	}
	if rec != nil {
		log.Info("run complete", "blocks", rec.Blocks())
	}
	return nil
}

func newLogger(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	color := hclog.ColorOff
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color = hclog.AutoColor
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "microhook",
		Level:  level,
		Color:  color,
		Output: os.Stderr,
	}).With("run", ulid.Make().String())
}

// dispatch drives one syscall through the hook engine, emulating the
// few syscalls the rig supports itself and stubbing the rest to 0.
func dispatch(u *emu.Unicorn, osm *models.OS, eng *hooks.Engine, log hclog.Logger) {
	nr, err := u.RegRead(osm.NumReg)
	if err != nil {
		log.Warn("failed to read syscall number", "error", err)
		return
	}
	num := int(nr)
	var args [hooks.NumArgs]int64
	for i, enum := range osm.SyscallRegs {
		if i >= hooks.NumArgs {
			break
		}
		val, _ := u.RegRead(enum)
		args[i] = int64(val)
	}

	invoked, res := eng.PreSyscall(num, args)
	name, _ := osm.SyscallName(num)
	log.Debug("syscall", "num", num, "name", name, "hooked", invoked,
		"action", res.Action.String())

	var ret int64
	if res.Action == hooks.Skip {
		ret = res.Ret
	} else {
		ret = emulate(u, osm, num, res.Args)
	}
	ret = eng.PostSyscall(num, ret, res.Args)
	if err := u.RegWrite(osm.RetReg, uint64(ret)); err != nil {
		log.Warn("failed to write syscall return", "error", err)
	}
}

func emulate(u *emu.Unicorn, osm *models.OS, num int, args [hooks.NumArgs]int64) int64 {
	name, _ := osm.SyscallName(num)
	switch name {
	case "exit", "exit_group":
		u.Stop()
		return 0
	case "write":
		fd, addr, n := args[0], uint64(args[1]), args[2]
		if n <= 0 || (fd != 1 && fd != 2) {
			return 0
		}
		p, err := u.MemRead(addr, uint64(n))
		if err != nil {
			return 0
		}
		w := os.Stdout
		if fd == 2 {
			w = os.Stderr
		}
		w.Write(p)
		return n
	default:
		return 0
	}
}
