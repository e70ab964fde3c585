package models

import "testing"

func testArch() *Arch {
	a := &Arch{
		Name: "test",
		Bits: 32,
		PC:   100,
		SP:   101,
		Regs: map[string]int{
			"r0": 1, "r1": 2, "r2": 3, "r10": 4, "lr": 5,
		},
		DefaultRegs: []string{"r0", "r1", "r2"},
	}
	a.RegisterOS(&OS{
		Name:     "linux",
		Syscalls: map[int]string{0: "read", 1: "write", 60: "exit"},
	})
	return a
}

func TestRegListOrder(t *testing.T) {
	a := testArch()
	rl := a.RegList()
	if len(rl) != 5 {
		t.Fatalf("expected 5 regs, got %d", len(rl))
	}
	// natural sort puts r2 before r10
	want := []string{"lr", "r0", "r1", "r2", "r10"}
	for i, name := range want {
		if rl[i].Name != name {
			t.Errorf("reg %d: expected %s, got %s", i, name, rl[i].Name)
		}
	}
}

func TestRegEnums(t *testing.T) {
	a := testArch()
	enums := a.RegEnums()
	if len(enums) != 7 {
		t.Fatalf("expected 7 enums, got %d", len(enums))
	}
	if enums[0] != a.PC || enums[1] != a.SP {
		t.Error("pc/sp must come first")
	}
	seen := make(map[int]bool)
	for _, e := range enums {
		if seen[e] {
			t.Errorf("duplicate enum %d", e)
		}
		seen[e] = true
	}
}

func TestSyscallNames(t *testing.T) {
	os := testArch().OS["linux"]
	if name, ok := os.SyscallName(60); !ok || name != "exit" {
		t.Errorf("expected exit, got %s (%v)", name, ok)
	}
	if _, ok := os.SyscallName(9999); ok {
		t.Error("unknown number should not resolve")
	}

	if nr, ok := os.SyscallNumber("write"); !ok || nr != 1 {
		t.Errorf("expected 1, got %d (%v)", nr, ok)
	}
	// matching is case-sensitive
	if _, ok := os.SyscallNumber("Write"); ok {
		t.Error("case-insensitive match should not resolve")
	}
	if _, ok := os.SyscallNumber("nope"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestRegisterOSDuplicatePanics(t *testing.T) {
	a := testArch()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate OS")
		}
	}()
	a.RegisterOS(&OS{Name: "linux"})
}
