package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute pixels
	UnitPercent             // Percentage of parent's available space
	UnitFill                // Entire available space of the parent
)

// Value represents a dimension that can be fixed, percentage, fill, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
func Fixed(px float64) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fill returns a Value that takes the parent's entire available space.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// Parse converts a size expression into a Value. The accepted grammar is
// a plain number ("120", "12.5"), "auto", "fill", or a percentage ("50%").
// Anything else is an error so that typos surface immediately instead of
// silently defaulting.
func Parse(s string) (Value, error) {
	switch t := strings.TrimSpace(s); {
	case t == "auto":
		return Auto(), nil
	case t == "fill":
		return Fill(), nil
	case strings.HasSuffix(t, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(t, "%"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("layout: invalid percentage %q", s)
		}
		return Percent(p), nil
	case t == "":
		return Value{}, fmt.Errorf("layout: empty size expression")
	default:
		px, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Value{}, fmt.Errorf("layout: invalid size %q (want number, \"auto\", \"fill\", or \"NN%%\")", s)
		}
		return Fixed(px), nil
	}
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Resolve computes the pixel value given the parent's available space.
// available < 0 means the parent dimension is not yet definite; percent
// and fill then stay unresolved and definite reports false, matching the
// top-down resolution order of the prepare pass.
func (v Value) Resolve(available float64) (px float64, definite bool) {
	switch v.Unit {
	case UnitFixed:
		return v.Amount, true
	case UnitPercent:
		if available < 0 {
			return 0, false
		}
		return available * v.Amount / 100.0, true
	case UnitFill:
		if available < 0 {
			return 0, false
		}
		return available, true
	default:
		return 0, false
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String returns the expression form of the value.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	case UnitFill:
		return "fill"
	default:
		return "auto"
	}
}
