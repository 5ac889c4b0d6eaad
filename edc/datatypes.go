package edc

import (
	"encoding/xml"
	"io"
)

// Device is the root of an EDC register description. Only the parts of the
// document needed for SVD generation are decoded; everything else is skipped.
type Device struct {
	Name          string         `xml:"name,attr"`
	PhysicalSpace *PhysicalSpace `xml:"PhysicalSpace"`
}

type PhysicalSpace struct {
	Sectors []DataSector `xml:"SFRDataSector"`
}

type DataSector struct {
	RegionID string   `xml:"regionid,attr"`
	SFRs     []SFRDef `xml:"SFRDef"`
}

// SFRDef describes a single special function register. The peripheral hint
// attributes are pointers so that an absent attribute can be told apart from an
// empty one; the fallback chain in the generator depends on that distinction.
type SFRDef struct {
	Name               string    `xml:"name,attr"`
	CName              string    `xml:"cname,attr"`
	Addr               string    `xml:"_addr,attr"`
	MCLR               string    `xml:"mclr,attr"`
	Portals            *string   `xml:"portals,attr"`
	BaseOfPeripheral   *string   `xml:"baseofperipheral,attr"`
	MemberOfPeripheral *string   `xml:"memberofperipheral,attr"`
	Group              *string   `xml:"grp,attr"`
	ModSrc             *string   `xml:"_modsrc,attr"`
	Modes              *ModeList `xml:"SFRModeList"`
}

type ModeList struct {
	Modes []Mode `xml:"SFRMode"`
}

// Mode holds the field layout of one register mode. Field definitions and
// adjust points are interleaved, so the entries are collected as one ordered
// sequence instead of per-element slices.
type Mode struct {
	ID      string      `xml:"id,attr"`
	Entries []ModeEntry `xml:",any"`
}

// ModeEntry is either an SFRFieldDef or an AdjustPoint, distinguished by
// XMLName. Unknown elements are kept too; the layout builder rejects them.
type ModeEntry struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
	CName   string `xml:"cname,attr"`
	Width   string `xml:"nzwidth,attr"`
	Offset  string `xml:"offset,attr"`
}

// Decode reads an entire EDC document.
func Decode(r io.Reader) (*Device, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var device Device
	if err = xml.Unmarshal(buf, &device); err != nil {
		return nil, err
	}
	return &device, nil
}
