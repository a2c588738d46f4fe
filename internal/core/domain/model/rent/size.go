package rent

import (
	"fmt"

	"bloqnet/internal/pkg/errs"
)

// Size represents the parcel size class of a rent.
type Size string

const (
	SizeXS Size = "XS"
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

// Validate checks that the size is one of the known size classes.
func (s Size) Validate() error {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%q is not a valid rent size", string(s)))
	}
}

// String returns the wire representation of the size.
func (s Size) String() string {
	return string(s)
}
