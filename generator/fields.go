package generator

import (
	"fmt"

	"omibyte.io/edc2svd/edc"
)

type field struct {
	name string
	msb  uint32
	lsb  uint32
}

// buildFields resolves the bit layout of one SFR mode. The returned bit
// position is the cursor after the last entry; 0 means the mode carried no
// field information at all, not that the register is zero bits wide.
func (g *edcgen) buildFields(mode *edc.Mode) ([]field, uint32, error) {
	var fields []field
	var bitpos uint32
	for i := range mode.Entries {
		entry := &mode.Entries[i]
		switch entry.XMLName.Local {
		case "SFRFieldDef":
			if entry.CName != entry.Name {
				g.trace.Printf("warning: cname = %s but name = %s", entry.CName, entry.Name)
			}
			width, err := edc.ParseU32(entry.Width)
			if err != nil {
				return nil, 0, fmt.Errorf("field %s: %w", entry.CName, err)
			}
			g.trace.Printf("\t\t[%d:%d]\t%s", bitpos+width-1, bitpos, entry.CName)
			fields = append(fields, field{
				name: entry.CName,
				msb:  bitpos + width - 1,
				lsb:  bitpos,
			})
			bitpos += width
		case "AdjustPoint":
			offset, err := edc.ParseU32(entry.Offset)
			if err != nil {
				return nil, 0, fmt.Errorf("adjust point: %w", err)
			}
			bitpos += offset
		default:
			return nil, 0, fmt.Errorf("%w: %s", ErrUnexpectedFieldEntry, entry.XMLName.Local)
		}
	}
	if bitpos > regWidth {
		return nil, 0, fmt.Errorf("%w: %d bits", ErrFieldOverflow, bitpos)
	}
	return fields, bitpos, nil
}
