package coverage

import (
	"io"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

var STREAM_MAGIC = "MHCV"

type StreamHeader struct {
	// MAGIC ("MHCV")
	Magic string `struc:"[4]byte"`
	// file format version
	Version uint32
}

type blockEvent struct {
	Addr uint64 `struc:"uint64,little"`
	Size uint32 `struc:"uint32,little"`
}

// StreamWriter appends snappy-framed block events behind a packed
// header. Unlike the DRCov path it never rewrites: long runs pay for
// each block once.
type StreamWriter struct {
	w  io.WriteCloser
	zw *snappy.Writer
}

func NewStreamWriter(w io.WriteCloser) (*StreamWriter, error) {
	header := &StreamHeader{Magic: STREAM_MAGIC, Version: 1}
	if err := struc.Pack(w, header); err != nil {
		return nil, errors.Wrap(err, "failed to pack header")
	}
	return &StreamWriter{w: w, zw: snappy.NewBufferedWriter(w)}, nil
}

// one event at a time
func (s *StreamWriter) Write(addr uint64, size uint32) error {
	return struc.Pack(s.zw, &blockEvent{Addr: addr, Size: size})
}

func (s *StreamWriter) Flush() error {
	return s.zw.Flush()
}

func (s *StreamWriter) Close() error {
	if err := s.zw.Close(); err != nil {
		s.w.Close()
		return err
	}
	return s.w.Close()
}

type StreamReader struct {
	r      io.ReadCloser
	zr     *snappy.Reader
	Header StreamHeader
}

func NewStreamReader(r io.ReadCloser) (*StreamReader, error) {
	s := &StreamReader{r: r}
	if err := struc.Unpack(r, &s.Header); err != nil {
		return nil, errors.Wrap(err, "failed to unpack header")
	}
	if s.Header.Magic != STREAM_MAGIC {
		return nil, errors.New("invalid coverage stream magic")
	}
	s.zr = snappy.NewReader(r)
	return s, nil
}

// Next returns the next block event; end of stream surfaces as an
// unpack error.
func (s *StreamReader) Next() (uint64, uint32, error) {
	var ev blockEvent
	if err := struc.Unpack(s.zr, &ev); err != nil {
		return 0, 0, err
	}
	return ev.Addr, ev.Size, nil
}

func (s *StreamReader) Close() error {
	return s.r.Close()
}
