// Package coverage accumulates guest basic blocks and persists them
// for offline analysis, either as a DRCov v2 file or as an append-only
// block event stream.
package coverage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// a full DRCov rewrite happens every this many new blocks
const flushInterval = 100

// the bb entry size field is 16 bits wide
const maxBlockSize = 0xffff

type bbEntry struct {
	Start uint32 `struc:"uint32,little"`
	Size  uint16 `struc:"uint16,little"`
	Mod   uint16 `struc:"uint16,little"`
}

// Recorder deduplicates basic blocks by address and periodically
// rewrites its output file with everything accumulated so far. Safe
// for concurrent use. Blocks recorded before SetBinaryInfo stay in the
// dedup set; the code-range filter applies at emission time only.
type Recorder struct {
	mu  sync.Mutex
	log hclog.Logger

	template string
	outPath  string

	binPath   string
	binName   string
	codeStart uint64
	codeEnd   uint64
	entry     uint64

	blocks   map[uint64]uint32
	newCount int

	stream *StreamWriter
	closed bool
}

// NewRecorder prepares a recorder writing to the expansion of
// template, where %d is the current date+time, %s the program basename
// (re-expanded once SetBinaryInfo supplies it) and %% a literal %.
// A template ending in .mhstream selects the raw stream format.
func NewRecorder(template string, log hclog.Logger) (*Recorder, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if template == "" {
		template = "coverage.drcov"
	}
	r := &Recorder{
		log:      log.Named("coverage"),
		template: template,
		blocks:   make(map[uint64]uint32),
		outPath:  expandTemplate(template, ""),
	}
	if strings.HasSuffix(r.outPath, ".mhstream") {
		f, err := os.Create(r.outPath)
		if err != nil {
			return nil, errors.Wrapf(err, "coverage output %s", r.outPath)
		}
		sw, err := NewStreamWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		r.stream = sw
	}
	return r, nil
}

// SetBinaryInfo supplies the module table entry and the [codeStart,
// codeEnd) filter applied to emitted blocks.
func (r *Recorder) SetBinaryInfo(path string, codeStart, codeEnd, entry uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binPath = path
	if path != "" {
		r.binName = filepath.Base(path)
	}
	r.codeStart, r.codeEnd, r.entry = codeStart, codeEnd, entry
	if r.stream == nil {
		r.outPath = expandTemplate(r.template, r.binName)
		r.log.Info("coverage output", "file", r.outPath)
	}
}

// RecordBlock registers a translated basic block. Duplicate addresses
// are dropped; every flushInterval new blocks the output is rewritten.
func (r *Recorder) RecordBlock(addr uint64, size uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if _, seen := r.blocks[addr]; seen {
		return
	}
	r.blocks[addr] = size

	if r.stream != nil {
		if err := r.stream.Write(addr, size); err != nil {
			r.log.Warn("stream write failed", "error", err)
		}
		return
	}
	r.newCount++
	if r.newCount >= flushInterval {
		if err := r.flushLocked(); err != nil {
			r.log.Warn("flush failed", "error", err)
		}
		r.newCount = 0
	}
}

// Blocks returns the number of unique blocks seen so far.
func (r *Recorder) Blocks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blocks)
}

// Flush forces the accumulated coverage out to disk.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stream != nil {
		return r.stream.Flush()
	}
	return r.flushLocked()
}

// Close performs a final flush and releases the recorder. Subsequent
// RecordBlock calls are dropped.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.stream != nil {
		return r.stream.Close()
	}
	err := r.flushLocked()
	if err == nil {
		r.log.Info("coverage written", "blocks", len(r.blocks), "file", r.outPath)
	}
	return err
}

// flushLocked rewrites the whole DRCov file from the accumulated set.
func (r *Recorder) flushLocked() error {
	f, err := os.Create(r.outPath)
	if err != nil {
		return errors.Wrapf(err, "coverage output %s", r.outPath)
	}
	defer f.Close()

	addrs := make([]uint64, 0, len(r.blocks))
	for addr := range r.blocks {
		if addr >= r.codeStart && addr < r.codeEnd {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	path := r.binPath
	if path == "" {
		path = "unknown"
	}
	fmt.Fprintf(f, "DRCOV VERSION: 2\n")
	fmt.Fprintf(f, "DRCOV FLAVOR: drcov-64\n")
	fmt.Fprintf(f, "Module Table: version 2, count 1\n")
	fmt.Fprintf(f, "Columns: id, base, end, entry, path\n")
	fmt.Fprintf(f, "0, %#x, %#x, %#x, %s\n", r.codeStart, r.codeEnd, r.entry, path)
	fmt.Fprintf(f, "BB Table: %d bbs\n", len(addrs))

	for _, addr := range addrs {
		size := r.blocks[addr]
		if size > maxBlockSize {
			size = maxBlockSize
		}
		e := &bbEntry{Start: uint32(addr - r.codeStart), Size: uint16(size)}
		if err := struc.Pack(f, e); err != nil {
			return errors.Wrap(err, "failed to pack block")
		}
	}
	return nil
}

func expandTemplate(template, prog string) string {
	if prog == "" {
		prog = "unknown"
	}
	datetime := time.Now().Format("2006-01-02-15:04:05")
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] == '%' && i+1 < len(template) {
			switch template[i+1] {
			case 'd':
				b.WriteString(datetime)
				i++
				continue
			case 's':
				b.WriteString(prog)
				i++
				continue
			case '%':
				b.WriteByte('%')
				i++
				continue
			}
			// unknown specifier passes through untouched
		}
		b.WriteByte(template[i])
	}
	return b.String()
}
