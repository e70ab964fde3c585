package mem

import (
	"fmt"
	"sort"
)

// Error reports a failed access to unmapped guest memory.
type Error struct {
	Addr  uint64
	Size  int
	Write bool
}

func (e *Error) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("unmapped %s at %#x(%d)", op, e.Addr, e.Size)
}

// Sim models a sparse guest address space as a sorted list of regions.
// It does no locking of its own.
type Sim struct {
	regions Regions
}

// Regions exposes the current mapping list, sorted by address.
func (s *Sim) Regions() Regions {
	return s.regions
}

// RangeValid reports whether [addr, addr+size) is entirely mapped.
func (s *Sim) RangeValid(addr, size uint64) bool {
	first := s.regions.bsearch(addr)
	if first == -1 {
		return false
	}
	end := addr + size
	for _, r := range s.regions[first:] {
		if !r.Contains(addr) {
			break
		}
		addr = r.Addr + r.Size
		if addr >= end {
			break
		}
	}
	return addr >= end
}

// Map maps [addr, addr+size). Existing data in an overlapped range is
// preserved unless zero is set. The region list is re-sorted so reads
// can binary search.
func (s *Sim) Map(addr, size uint64, prot int, zero bool) *Region {
	data := make([]byte, size)
	if !zero {
		// preserve whatever the new range overlaps, even partially
		for _, r := range s.regions {
			if oaddr, osize, ok := r.Intersect(addr, size); ok {
				copy(data[oaddr-addr:oaddr-addr+osize], r.Data[oaddr-r.Addr:])
			}
		}
	}
	s.Unmap(addr, size)
	region := &Region{Addr: addr, Size: size, Prot: prot, Data: data}
	s.regions = append(s.regions, region)
	sort.Sort(s.regions)
	return region
}

func (s *Sim) Unmap(addr, size uint64) {
	tmp := make(Regions, 0, len(s.regions))
	for _, r := range s.regions {
		if oaddr, osize, ok := r.Intersect(addr, size); ok {
			left, right := r.Split(oaddr, osize)
			if left != nil {
				tmp = append(tmp, left)
			}
			if right != nil {
				tmp = append(tmp, right)
			}
		} else {
			tmp = append(tmp, r)
		}
	}
	s.regions = tmp
}

// Read fills p from guest memory. The whole range must be mapped or
// nothing is read.
func (s *Sim) Read(addr uint64, p []byte) error {
	if !s.RangeValid(addr, uint64(len(p))) {
		return &Error{Addr: addr, Size: len(p)}
	}
	if i := s.regions.bsearch(addr); i >= 0 {
		for _, r := range s.regions[i:] {
			if !r.Contains(addr) {
				break
			}
			o := addr - r.Addr
			n := copy(p, r.Data[o:])
			addr, p = addr+uint64(n), p[n:]
		}
	}
	return nil
}

// Write copies p into guest memory. The whole destination range must be
// mapped or nothing is written.
func (s *Sim) Write(addr uint64, p []byte) error {
	if !s.RangeValid(addr, uint64(len(p))) {
		return &Error{Addr: addr, Size: len(p), Write: true}
	}
	if i := s.regions.bsearch(addr); i >= 0 {
		for _, r := range s.regions[i:] {
			if !r.Contains(addr) {
				break
			}
			n := r.write(addr, p)
			addr, p = addr+uint64(n), p[n:]
		}
	}
	return nil
}
