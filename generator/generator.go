package generator

import (
	"io"
	"log"

	"omibyte.io/edc2svd/edc"
	"omibyte.io/edc2svd/svd"
)

// Register and portal geometry of the PIC32 SFR space. Every SFR is 32 bits
// wide and its physical address is accessed through the uncached KSEG1 window.
const (
	regWidth  = 32
	kseg1     = 0xA000_0000
	clrOffset = 0x4
	setOffset = 0x8
	invOffset = 0xC
)

// sectorMarker selects the SFRDataSector regions that describe peripheral
// registers.
const sectorMarker = "periph"

type Generator interface {
	Generate(out io.Writer) error
}

type Options struct {
	// Trace receives the per-register conversion log. Nil disables it.
	Trace *log.Logger

	// ModuleMap maps additional _modsrc identifiers to peripheral labels,
	// consulted before the embedded table.
	ModuleMap map[string]string
}

type edcgen struct {
	doc       *edc.Device
	trace     *log.Logger
	overrides map[string]string

	// current open peripheral group and its base address
	current  *svd.PeripheralElement
	baseAddr uint32
}

func NewGenerator(doc *edc.Device, opts Options) Generator {
	trace := opts.Trace
	if trace == nil {
		trace = log.New(io.Discard, "", 0)
	}
	return &edcgen{
		doc:       doc,
		trace:     trace,
		overrides: opts.ModuleMap,
	}
}

func (g *edcgen) Generate(out io.Writer) error {
	device, err := g.convert()
	if err != nil {
		return err
	}
	return device.Write(out)
}

// convert runs the whole pass: one device element, one peripherals element,
// peripherals discovered in document order.
func (g *edcgen) convert() (*svd.DeviceElement, error) {
	if g.doc.PhysicalSpace == nil {
		return nil, errMissing("PhysicalSpace")
	}
	device := &svd.DeviceElement{Name: g.doc.Name}
	g.current = nil
	g.baseAddr = 0
	for i := range g.doc.PhysicalSpace.Sectors {
		sector := &g.doc.PhysicalSpace.Sectors[i]
		if !isPeripheralSector(sector) {
			continue
		}
		for j := range sector.SFRs {
			if err := g.convertSFR(device, &sector.SFRs[j]); err != nil {
				return nil, err
			}
		}
	}
	return device, nil
}
