package emu

import (
	"testing"

	"github.com/hextreeio/microhook/models"
)

func testArch() *models.Arch {
	return &models.Arch{
		Name: "test",
		Bits: 32,
		PC:   1,
		SP:   2,
		Regs: map[string]int{"r0": 3, "r1": 4},
	}
}

func TestMemReadUnmapped(t *testing.T) {
	e := New(testArch())
	e.MemMapProt(0x1000, 0x1000, models.PROT_ALL)

	if _, err := e.MemRead(0x9000, 4); err == nil {
		t.Error("expected error for unmapped read")
	}
	// oversized read must error before allocating
	if _, err := e.MemRead(0x1000, 1<<62); err == nil {
		t.Error("expected error for oversized read")
	}
	if _, err := e.MemRead(0x1000, 0x1000); err != nil {
		t.Errorf("mapped read failed: %v", err)
	}
}

func TestRegMask(t *testing.T) {
	e := New(testArch())
	if err := e.RegWrite(3, 0x1_ffffffff); err != nil {
		t.Fatal(err)
	}
	val, err := e.RegRead(3)
	if err != nil {
		t.Fatal(err)
	}
	if val != 0xffffffff {
		t.Errorf("expected 32-bit mask, got %#x", val)
	}
	if _, err := e.RegRead(999); err == nil {
		t.Error("expected error for unknown register")
	}
}
