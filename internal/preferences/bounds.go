package preferences

import (
	"math"
	"strings"
)

// Policy decides what a setter does with a value outside its bounds
type Policy int

const (
	// Clamp stores the nearest bound
	Clamp Policy = iota
	// Reject leaves the field unchanged
	Reject
	// Wrap maps the value into [Min, Max) modulo the range width
	Wrap
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Reject:
		return "reject"
	case Wrap:
		return "wrap"
	}
	return "unknown"
}

type number interface {
	~int | ~int64 | ~float32 | ~float64
}

// Bounds is the validation metadata of a numeric field
type Bounds[T number] struct {
	Min    T
	Max    T
	Policy Policy
}

// Open reports whether the upper bound is effectively unlimited
func (b Bounds[T]) Open() bool {
	return float64(b.Max) >= math.MaxInt32
}

// Correct returns the value to store for v and whether v is accepted at all
func (b Bounds[T]) Correct(v T) (T, bool) {
	if isNaN(v) {
		return v, false
	}
	switch b.Policy {
	case Reject:
		if v < b.Min || v > b.Max {
			return v, false
		}
		return v, true
	case Wrap:
		width := float64(b.Max - b.Min)
		offset := math.Mod(float64(v-b.Min), width)
		if offset < 0 {
			offset += width
		}
		return b.Min + T(offset), true
	default:
		return min(max(v, b.Min), b.Max), true
	}
}

func isNaN[T number](v T) bool {
	return v != v
}

// Result reports the outcome of a setter
type Result[T any] struct {
	Changed bool
	Value   T
}

func assign[T comparable](field *T, v T) Result[T] {
	changed := *field != v
	*field = v
	return Result[T]{Changed: changed, Value: v}
}

// assignText stores v without the characters an XML document cannot carry
func assignText(field *string, v string) Result[string] {
	return assign(field, xmlText(v))
}

// xmlText drops invalid UTF-8 and the control characters XML 1.0 forbids
func xmlText(v string) string {
	v = strings.ToValidUTF8(v, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, v)
}

// isXMLText reports whether v survives an XML document unchanged
func isXMLText(v string) bool {
	return v == xmlText(v)
}

func assignBounded[T number](field *T, v T, b Bounds[T]) Result[T] {
	corrected, ok := b.Correct(v)
	if !ok {
		return Result[T]{Value: *field}
	}
	return assign(field, corrected)
}

func unchanged[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// HasChanged reports whether a batch update changed anything
func HasChanged[T any](changes []T) bool {
	return len(changes) > 0
}

func clampBounds[T number](lo, hi T) Bounds[T] {
	return Bounds[T]{Min: lo, Max: hi, Policy: Clamp}
}

func rejectBounds[T number](lo, hi T) Bounds[T] {
	return Bounds[T]{Min: lo, Max: hi, Policy: Reject}
}

func assignChoice[T ~string](field *T, v T, byName func(string) (T, bool)) Result[T] {
	if _, ok := byName(string(v)); !ok {
		return unchanged(*field)
	}
	return assign(field, v)
}
