package edc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedNumber = errors.New("malformed numeral")
	ErrUnknownPortals  = errors.New("unexpected portals attribute")
)

// ParseU32 parses a numeral attribute, either "0x"-prefixed hexadecimal or
// plain decimal.
func ParseU32(text string) (uint32, error) {
	var value uint64
	var err error
	if strings.HasPrefix(text, "0x") {
		value, err = strconv.ParseUint(text[2:], 16, 32)
	} else {
		value, err = strconv.ParseUint(text, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	return uint32(value), nil
}

var resetReplacer = strings.NewReplacer("-", "0", "x", "0", "u", "0")

// ParseResetValue parses an mclr bit pattern. Unimplemented (-), undefined (x)
// and unknown (u) bits count as 0.
func ParseResetValue(text string) (uint32, error) {
	value, err := strconv.ParseUint(resetReplacer.Replace(text), 2, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: mclr attribute %q", ErrMalformedNumber, text)
	}
	return uint32(value), nil
}

// Portals reports which of the atomic bit-manipulation aliases exist at
// offsets +4, +8 and +0xC from a register.
type Portals struct {
	Clr bool
	Set bool
	Inv bool
}

// ParsePortals recognizes the three portal forms used by EDC files. Anything
// else is an error; silently defaulting would hide new forms.
func ParsePortals(text string) (Portals, error) {
	switch text {
	case "CLR SET INV":
		return Portals{Clr: true, Set: true, Inv: true}, nil
	case "CLR - -":
		return Portals{Clr: true}, nil
	case "- - -":
		return Portals{}, nil
	}
	return Portals{}, fmt.Errorf("%w: %q", ErrUnknownPortals, text)
}
