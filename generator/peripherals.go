package generator

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"omibyte.io/edc2svd/edc"
	"omibyte.io/edc2svd/svd"
)

//go:embed peripherals.yaml
var rawModules []byte

var modules moduleTable

type moduleTable struct {
	Modules []moduleGroup `yaml:"modules"`
}

type moduleGroup struct {
	Label   string   `yaml:"label"`
	Sources []string `yaml:"sources"`
}

func init() {
	if err := yaml.Unmarshal(rawModules, &modules); err != nil {
		panic(err)
	}
}

func isPeripheralSector(sector *edc.DataSector) bool {
	return strings.HasPrefix(sector.RegionID, sectorMarker)
}

// convertSFR turns one SFR definition into 1 to 4 output registers, opening a
// new peripheral group whenever the inferred label changes.
func (g *edcgen) convertSFR(device *svd.DeviceElement, sfr *edc.SFRDef) error {
	addr, err := edc.ParseU32(sfr.Addr)
	if err != nil {
		return fmt.Errorf("register %s: %w", sfr.Name, err)
	}
	// map the physical address to the KSEG1 segment
	addr |= kseg1

	if sfr.Name != sfr.CName {
		return fmt.Errorf("%w: cname = %s, name = %s", ErrNameMismatch, sfr.CName, sfr.Name)
	}

	portalsAttr := "- - -"
	if sfr.Portals != nil {
		portalsAttr = *sfr.Portals
	}
	portals, err := edc.ParsePortals(portalsAttr)
	if err != nil {
		return fmt.Errorf("register %s: %w", sfr.Name, err)
	}

	reset, err := edc.ParseResetValue(sfr.MCLR)
	if err != nil {
		return fmt.Errorf("register %s: %w", sfr.Name, err)
	}

	label, err := g.peripheralLabel(sfr)
	if err != nil {
		return err
	}

	if sfr.Modes == nil || len(sfr.Modes.Modes) == 0 {
		return fmt.Errorf("register %s: %w", sfr.Name, errMissing("SFRMode"))
	}
	mode := &sfr.Modes.Modes[0]

	if g.current == nil || label != g.current.Name {
		if g.current != nil && addr <= g.baseAddr {
			return fmt.Errorf("%w: %s base address 0x%x does not exceed 0x%x",
				ErrAddressOrder, label, addr, g.baseAddr)
		}
		g.baseAddr = addr
		g.current = &svd.PeripheralElement{
			Name:        label,
			Description: label + " peripheral",
			BaseAddress: svd.HexInteger(addr),
		}
		device.Peripherals.Elements = append(device.Peripherals.Elements, g.current)
		g.trace.Printf("%s base_addr = %x", label, addr)
	}
	if addr < g.baseAddr {
		return fmt.Errorf("%w: register %s at 0x%x below group base 0x%x",
			ErrAddressOrder, sfr.Name, addr, g.baseAddr)
	}
	offset := addr - g.baseAddr

	g.trace.Printf("  %s", sfr.Name)
	g.trace.Printf("\t%s   : %x, offset = %x, reset = %x (%s)",
		sfr.Name, addr, offset, reset, portalsAttr)
	fields, bitpos, err := g.buildFields(mode)
	if err != nil {
		return fmt.Errorf("register %s: %w", sfr.Name, err)
	}
	g.synthesize(sfr.Name, addr, offset, reset, portals, fields, bitpos)
	return nil
}

// peripheralLabel infers the owning peripheral of an SFR. First non-empty hint
// wins: baseofperipheral, memberofperipheral, grp, then the module source
// table. Only the first whitespace-delimited token of the hint is kept.
func (g *edcgen) peripheralLabel(sfr *edc.SFRDef) (string, error) {
	var label string
	switch {
	case sfr.BaseOfPeripheral != nil:
		label = *sfr.BaseOfPeripheral
	case sfr.MemberOfPeripheral != nil && *sfr.MemberOfPeripheral != "":
		label = *sfr.MemberOfPeripheral
	case sfr.Group != nil:
		label = *sfr.Group
	case sfr.ModSrc != nil:
		label = g.moduleLabel(*sfr.ModSrc)
	default:
		return "", fmt.Errorf("%w for %s", ErrNoPeripheral, sfr.Name)
	}
	if i := strings.IndexByte(label, ' '); i >= 0 {
		label = label[:i]
	}
	if label == "" {
		return "", fmt.Errorf("%w for %s: empty peripheral info", ErrNoPeripheral, sfr.Name)
	}
	return label, nil
}

func (g *edcgen) moduleLabel(modsrc string) string {
	if label, ok := g.overrides[modsrc]; ok {
		return label
	}
	for _, m := range modules.Modules {
		if slices.Contains(m.Sources, modsrc) {
			return m.Label
		}
	}
	return ""
}
