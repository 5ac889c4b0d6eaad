package generator

import (
	"errors"
	"fmt"
)

var (
	ErrMissingElement       = errors.New("required element missing")
	ErrNameMismatch         = errors.New("cname and name attributes disagree")
	ErrNoPeripheral         = errors.New("missing peripheral")
	ErrAddressOrder         = errors.New("register addresses do not ascend")
	ErrUnexpectedFieldEntry = errors.New("unexpected element in field definition")
	ErrFieldOverflow        = errors.New("field layout exceeds register width")
)

func errMissing(element string) error {
	return fmt.Errorf("%w: %s", ErrMissingElement, element)
}
