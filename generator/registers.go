package generator

import (
	"omibyte.io/edc2svd/edc"
	"omibyte.io/edc2svd/svd"
)

// addRegister appends one register to the open peripheral group. Each register
// gets its own copy of the field elements; the output tree shares nothing.
func (g *edcgen) addRegister(name string, offset, reset uint32, fields []field, bitpos uint32) {
	reg := svd.RegisterElement{
		Name:          name,
		Description:   name + " register",
		AddressOffset: svd.HexInteger(offset),
		Size:          regWidth,
		ResetValue:    svd.Integer(reset),
	}
	if bitpos > 0 {
		fieldsElem := &svd.FieldsElement{
			Elements: make([]svd.FieldElement, len(fields)),
		}
		for i, f := range fields {
			fieldsElem.Elements[i] = svd.FieldElement{
				Name:     f.name,
				BitRange: svd.BitRange{Msb: f.msb, Lsb: f.lsb},
			}
		}
		reg.Fields = fieldsElem
	}
	registers := &g.current.Registers
	registers.Elements = append(registers.Elements, reg)
}

// synthesize emits the base register and its portal aliases. The portals have
// no defined reset value since reading them is architecturally undefined, so
// they reset to 0.
func (g *edcgen) synthesize(name string, addr, offset, reset uint32, portals edc.Portals, fields []field, bitpos uint32) {
	g.addRegister(name, offset, reset, fields, bitpos)
	if portals.Clr {
		g.trace.Printf("\t%sCLR: %x, offset = %x", name, addr+clrOffset, offset+clrOffset)
		g.addRegister(name+"CLR", offset+clrOffset, 0, fields, bitpos)
	}
	if portals.Set {
		g.trace.Printf("\t%sSET: %x, offset = %x", name, addr+setOffset, offset+setOffset)
		g.addRegister(name+"SET", offset+setOffset, 0, fields, bitpos)
	}
	if portals.Inv {
		g.trace.Printf("\t%sINV: %x, offset = %x", name, addr+invOffset, offset+invOffset)
		g.addRegister(name+"INV", offset+invOffset, 0, fields, bitpos)
	}
}
