package generator

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"log"
	"testing"

	"omibyte.io/edc2svd/edc"
)

func newTestGen() *edcgen {
	return &edcgen{trace: log.New(io.Discard, "", 0)}
}

func fieldDef(name, width string) edc.ModeEntry {
	return edc.ModeEntry{
		XMLName: xml.Name{Local: "SFRFieldDef"},
		Name:    name,
		CName:   name,
		Width:   width,
	}
}

func adjustPoint(offset string) edc.ModeEntry {
	return edc.ModeEntry{
		XMLName: xml.Name{Local: "AdjustPoint"},
		Offset:  offset,
	}
}

func TestBuildFields(t *testing.T) {
	tests := []struct {
		name     string
		entries  []edc.ModeEntry
		expected []field
		bitpos   uint32
	}{
		{
			"contiguous",
			[]edc.ModeEntry{fieldDef("LO", "4"), fieldDef("HI", "4")},
			[]field{{"LO", 3, 0}, {"HI", 7, 4}},
			8,
		},
		{
			"withAdjustPoint",
			[]edc.ModeEntry{fieldDef("LO", "4"), adjustPoint("4"), fieldDef("HI", "4")},
			[]field{{"LO", 3, 0}, {"HI", 11, 8}},
			12,
		},
		{
			"hexWidth",
			[]edc.ModeEntry{fieldDef("W", "0x10")},
			[]field{{"W", 15, 0}},
			16,
		},
		{
			"trailingAdjust",
			[]edc.ModeEntry{fieldDef("ON", "1"), adjustPoint("31")},
			[]field{{"ON", 0, 0}},
			32,
		},
		{
			"empty",
			nil,
			nil,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGen()
			fields, bitpos, err := g.buildFields(&edc.Mode{Entries: tt.entries})
			if err != nil {
				t.Fatal(err)
			}
			if bitpos != tt.bitpos {
				t.Errorf("bitpos: got %d, expected %d", bitpos, tt.bitpos)
			}
			if len(fields) != len(tt.expected) {
				t.Fatalf("got %d fields, expected %d", len(fields), len(tt.expected))
			}
			for i, f := range tt.expected {
				if fields[i] != f {
					t.Errorf("field %d: got %+v, expected %+v", i, fields[i], f)
				}
			}
		})
	}
}

func TestBuildFieldsErrors(t *testing.T) {
	tests := []struct {
		name     string
		entries  []edc.ModeEntry
		expected error
	}{
		{
			"unexpectedEntry",
			[]edc.ModeEntry{{XMLName: xml.Name{Local: "Comment"}}},
			ErrUnexpectedFieldEntry,
		},
		{
			"overflow",
			[]edc.ModeEntry{fieldDef("A", "30"), fieldDef("B", "3")},
			ErrFieldOverflow,
		},
		{
			"adjustOverflow",
			[]edc.ModeEntry{fieldDef("A", "1"), adjustPoint("32")},
			ErrFieldOverflow,
		},
		{
			"badWidth",
			[]edc.ModeEntry{fieldDef("A", "wide")},
			edc.ErrMalformedNumber,
		},
		{
			"badOffset",
			[]edc.ModeEntry{adjustPoint("x")},
			edc.ErrMalformedNumber,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGen()
			if _, _, err := g.buildFields(&edc.Mode{Entries: tt.entries}); !errors.Is(err, tt.expected) {
				t.Errorf("got %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestBuildFieldsNameMismatchWarns(t *testing.T) {
	var buf bytes.Buffer
	g := &edcgen{trace: log.New(&buf, "", 0)}

	entry := fieldDef("TXEN", "1")
	entry.Name = "UTXEN"
	fields, bitpos, err := g.buildFields(&edc.Mode{Entries: []edc.ModeEntry{entry}})
	if err != nil {
		t.Fatal(err)
	}
	if bitpos != 1 || len(fields) != 1 || fields[0].name != "TXEN" {
		t.Errorf("mismatched names must still emit the field: %+v", fields)
	}
	if !bytes.Contains(buf.Bytes(), []byte("warning: cname = TXEN but name = UTXEN")) {
		t.Errorf("missing warning, trace was:\n%s", buf.String())
	}
}
