package svd

import (
	"bufio"
	"encoding/xml"
	"io"
)

type DeviceElement struct {
	XMLName     xml.Name           `xml:"device"`
	Name        string             `xml:"name"`
	Peripherals PeripheralsElement `xml:"peripherals"`
}

type PeripheralsElement struct {
	Elements []*PeripheralElement `xml:"peripheral"`
}

func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name        string           `xml:"name"`
	Description string           `xml:"description"`
	BaseAddress HexInteger       `xml:"baseAddress"`
	Registers   RegistersElement `xml:"registers"`
}

type RegistersElement struct {
	Elements []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string         `xml:"name"`
	Description   string         `xml:"description"`
	AddressOffset HexInteger     `xml:"addressOffset"`
	Size          Integer        `xml:"size"`
	ResetValue    Integer        `xml:"resetValue"`
	Fields        *FieldsElement `xml:"fields,omitempty"`
}

type FieldsElement struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name     string   `xml:"name"`
	BitRange BitRange `xml:"bitRange"`
}

// Write serializes the device tree as an indented SVD document.
func (d *DeviceElement) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	return bw.Flush()
}
