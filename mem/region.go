package mem

import (
	"fmt"
	"strings"
)

// Region is one contiguous mapped range of the guest address space.
type Region struct {
	Addr uint64
	Size uint64
	Prot int
	Data []byte
}

func (r *Region) String() string {
	prots := []int{1, 2, 4}
	chars := []string{"r", "w", "x"}
	prot := ""
	for i := range prots {
		if r.Prot&prots[i] != 0 {
			prot += chars[i]
		} else {
			prot += "-"
		}
	}
	return fmt.Sprintf("0x%x-0x%x %s", r.Addr, r.Addr+r.Size, prot)
}

func (r *Region) Contains(addr uint64) bool {
	return addr >= r.Addr && addr < r.Addr+r.Size
}

// Intersect clips (addr, size) against the region.
// ok is false when the ranges do not overlap.
func (r *Region) Intersect(addr, size uint64) (uint64, uint64, bool) {
	start := r.Addr
	end := r.Addr + r.Size
	if e2 := addr + size; end > e2 {
		end = e2
	}
	if start < addr {
		start = addr
	}
	return start, end - start, end > start
}

func (r *Region) slice(addr, size uint64) *Region {
	o := addr - r.Addr
	return &Region{Addr: addr, Size: size, Prot: r.Prot, Data: r.Data[o : o+size]}
}

// Split carves (addr, size) out of the region, leaving the region
// covering exactly that range and returning whatever remains on either
// side.
func (r *Region) Split(addr, size uint64) (left, right *Region) {
	if addr+size < r.Addr+r.Size {
		ra := addr + size
		rs := (r.Addr + r.Size) - ra
		right = r.slice(ra, rs)
		r.Data = r.Data[:ra-r.Addr]
	}
	if addr > r.Addr {
		ls := addr - r.Addr
		left = r.slice(r.Addr, ls)
		r.Data = r.Data[ls:]
	}
	// pad if the carve extends past either edge
	if addr < r.Addr {
		extra := make([]byte, r.Addr-addr)
		r.Data = append(extra, r.Data...)
	}
	if end, nend := r.Addr+r.Size, addr+size; nend > end {
		extra := make([]byte, nend-end)
		r.Data = append(r.Data, extra...)
	}
	r.Addr, r.Size = addr, size
	return left, right
}

func (r *Region) write(addr uint64, p []byte) int {
	return copy(r.Data[addr-r.Addr:], p)
}

type Regions []*Region

func (r Regions) Len() int           { return len(r) }
func (r Regions) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r Regions) Less(i, j int) bool { return r[i].Addr < r[j].Addr }

func (r Regions) String() string {
	s := make([]string, len(r))
	for i, v := range r {
		s[i] = v.String()
	}
	return strings.Join(s, "\n")
}

// bsearch finds the index of the first region containing addr, or -1.
func (r Regions) bsearch(addr uint64) int {
	l := 0
	h := len(r) - 1
	for l <= h {
		mid := (l + h) / 2
		e := r[mid]
		if addr >= e.Addr {
			if addr < e.Addr+e.Size {
				return mid
			}
			l = mid + 1
		} else {
			h = mid - 1
		}
	}
	return -1
}

func (r Regions) Find(addr uint64) *Region {
	if i := r.bsearch(addr); i >= 0 {
		return r[i]
	}
	return nil
}
