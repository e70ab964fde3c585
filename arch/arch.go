// Package arch registers every target architecture microhook can
// snapshot and resolves (arch, os) pairs for the harness.
package arch

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/hextreeio/microhook/arch/arm"
	"github.com/hextreeio/microhook/arch/arm64"
	"github.com/hextreeio/microhook/arch/m68k"
	"github.com/hextreeio/microhook/arch/mips"
	"github.com/hextreeio/microhook/arch/sparc"
	"github.com/hextreeio/microhook/arch/x86"
	"github.com/hextreeio/microhook/arch/x86_64"
	"github.com/hextreeio/microhook/models"
)

var archMap = map[string]*models.Arch{
	"arm":    arm.Arch,
	"arm64":  arm64.Arch,
	"m68k":   m68k.Arch,
	"mips":   mips.Arch,
	"sparc":  sparc.Arch,
	"x86":    x86.Arch,
	"x86_64": x86_64.Arch,
}

// Names lists the registered architectures.
func Names() []string {
	names := make([]string, 0, len(archMap))
	for name := range archMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetArch(name, os string) (*models.Arch, *models.OS, error) {
	a, ok := archMap[name]
	if !ok {
		return nil, nil, errors.Errorf("arch '%s' not found", name)
	}
	o, ok := a.OS[os]
	if !ok {
		return nil, nil, errors.Errorf("os '%s' not found for arch '%s'", os, name)
	}
	return a, o, nil
}
