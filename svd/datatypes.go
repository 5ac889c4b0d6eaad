package svd

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Integer renders as a decimal element and accepts decimal or "0x" hexadecimal
// when decoding.
type Integer uint64

func (h *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeInteger(d, start)
	if err != nil {
		return err
	}
	*h = Integer(v)
	return nil
}

func (h Integer) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(strconv.FormatUint(uint64(h), 10), start)
}

// HexInteger renders as a lowercase "0x" hexadecimal element.
type HexInteger uint64

func (h *HexInteger) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeInteger(d, start)
	if err != nil {
		return err
	}
	*h = HexInteger(v)
	return nil
}

func (h HexInteger) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(fmt.Sprintf("0x%x", uint64(h)), start)
}

func decodeInteger(d *xml.Decoder, start xml.StartElement) (value uint64, err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return 0, err
	}
	if strings.HasPrefix(v, "0x") {
		value, err = strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64)
	} else {
		value, err = strconv.ParseUint(v, 10, 64)
	}
	return value, err
}

// BitRange is the "[msb:lsb]" bit position notation of a field.
type BitRange struct {
	Msb uint32
	Lsb uint32
}

func (b BitRange) String() string {
	return fmt.Sprintf("[%d:%d]", b.Msb, b.Lsb)
}

func (b BitRange) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(b.String(), start)
}

func (b *BitRange) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	if _, err := fmt.Sscanf(v, "[%d:%d]", &b.Msb, &b.Lsb); err != nil {
		return fmt.Errorf("malformed bit range %q", v)
	}
	return nil
}
