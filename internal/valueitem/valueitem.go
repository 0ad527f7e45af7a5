package valueitem

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind is the data type of a value item
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindSelection
	KindFlag
	KindDirectory
	KindFile
	KindTimestamp
	KindTuple
)

var kindNames = []string{"text", "numeric", "selection", "flag", "directory", "file", "timestamp", "tuple"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown value item kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	index := slices.Index(kindNames, string(text))
	if index < 0 {
		return fmt.Errorf("unknown value item kind %q", string(text))
	}
	*k = Kind(index)
	return nil
}

// TimestampLayout is the textual form of timestamp values
const TimestampLayout = "2006/01/02 - 15:04:05"

// Format describes the allowed values of an item
type Format struct {
	Kind      Kind     `json:"kind" xml:"kind,attr"`
	Min       float64  `json:"min" xml:"min,attr"`
	Max       float64  `json:"max" xml:"max,attr"`
	Decimals  int      `json:"decimals" xml:"decimals,attr"`
	Selection []string `json:"selection,omitempty" xml:"Choice"`
	Columns   []string `json:"columns,omitempty" xml:"Column"`
}

func TextFormat() Format      { return Format{Kind: KindText} }
func DirectoryFormat() Format { return Format{Kind: KindDirectory} }
func FileFormat() Format      { return Format{Kind: KindFile} }
func TimestampFormat() Format { return Format{Kind: KindTimestamp} }

func FlagFormat() Format {
	return Format{Kind: KindFlag, Selection: []string{"false", "true"}}
}

func NumericFormat(min, max float64, decimals int) Format {
	return Format{Kind: KindNumeric, Min: min, Max: max, Decimals: decimals}
}

func SelectionFormat(choices ...string) Format {
	return Format{Kind: KindSelection, Selection: choices}
}

// TupleFormat describes a fixed number of numeric columns sharing one range
func TupleFormat(min, max float64, decimals int, columns ...string) Format {
	return Format{Kind: KindTuple, Min: min, Max: max, Decimals: decimals, Columns: columns}
}

// ValueItem is a named, typed and display-labelled form entry
type ValueItem struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"displayName"`
	Description      string   `json:"description,omitempty"`
	NodeNames        []string `json:"nodeNames"`
	VerticalPosition int      `json:"verticalPosition"`
	Format           Format   `json:"format"`
	Values           []string `json:"values"`
}

// New creates an item without a value
func New(name, displayName string, format Format, nodeNames ...string) *ValueItem {
	return &ValueItem{
		Name:        name,
		DisplayName: displayName,
		NodeNames:   nodeNames,
		Format:      format,
	}
}

// Value returns the first value or the empty string
func (v *ValueItem) Value() string {
	if len(v.Values) == 0 {
		return ""
	}
	return v.Values[0]
}

func (v *ValueItem) SetValue(value string) {
	v.Values = []string{value}
}

func (v *ValueItem) SetValues(values ...string) {
	v.Values = slices.Clone(values)
}

func (v *ValueItem) SetInt(value int) {
	v.SetValue(strconv.Itoa(value))
}

func (v *ValueItem) SetInt64(value int64) {
	v.SetValue(strconv.FormatInt(value, 10))
}

func (v *ValueItem) SetFloat(value float64, bitSize int) {
	v.SetValue(strconv.FormatFloat(value, 'f', -1, bitSize))
}

func (v *ValueItem) SetBool(value bool) {
	v.SetValue(strconv.FormatBool(value))
}

func (v *ValueItem) SetInts(values ...int) {
	v.Values = make([]string, len(values))
	for i, value := range values {
		v.Values[i] = strconv.Itoa(value)
	}
}

func (v *ValueItem) SetFloats(bitSize int, values ...float64) {
	v.Values = make([]string, len(values))
	for i, value := range values {
		v.Values[i] = strconv.FormatFloat(value, 'f', -1, bitSize)
	}
}

func (v *ValueItem) ValueAsInt() (int, error) {
	return strconv.Atoi(strings.TrimSpace(v.Value()))
}

func (v *ValueItem) ValueAsInt64() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(v.Value()), 10, 64)
}

func (v *ValueItem) ValueAsFloat64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v.Value()), 64)
}

func (v *ValueItem) ValueAsFloat32() (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Value()), 32)
	return float32(f), err
}

func (v *ValueItem) ValueAsBool() (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(v.Value()))
}

// ValuesAsInts parses all values, requiring exactly n of them
func (v *ValueItem) ValuesAsInts(n int) ([]int, error) {
	if len(v.Values) != n {
		return nil, fmt.Errorf("item %s: expected %d values, got %d", v.Name, n, len(v.Values))
	}
	result := make([]int, n)
	for i, value := range v.Values {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("item %s: value %d: %w", v.Name, i, err)
		}
		result[i] = parsed
	}
	return result, nil
}

// ValuesAsFloat64s parses all values, requiring exactly n of them
func (v *ValueItem) ValuesAsFloat64s(n int) ([]float64, error) {
	if len(v.Values) != n {
		return nil, fmt.Errorf("item %s: expected %d values, got %d", v.Name, n, len(v.Values))
	}
	result := make([]float64, n)
	for i, value := range v.Values {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("item %s: value %d: %w", v.Name, i, err)
		}
		result[i] = parsed
	}
	return result, nil
}

// IsValid checks the values against the format
func (v *ValueItem) IsValid() bool {
	switch v.Format.Kind {
	case KindNumeric, KindTuple:
		if len(v.Values) == 0 {
			return false
		}
		for _, value := range v.Values {
			f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || math.IsNaN(f) || f < v.Format.Min || f > v.Format.Max {
				return false
			}
		}
		return v.Format.Kind != KindTuple || len(v.Format.Columns) == 0 || len(v.Values) == len(v.Format.Columns)
	case KindSelection, KindFlag:
		return slices.Contains(v.Format.Selection, v.Value())
	}
	return true
}

// Matches reports whether other describes the same entry: same display
// name, same kind and same values.
func (v *ValueItem) Matches(other *ValueItem) bool {
	if other == nil {
		return false
	}
	return v.DisplayName == other.DisplayName &&
		v.Format.Kind == other.Format.Kind &&
		slices.Equal(v.Values, other.Values)
}

func (v *ValueItem) Clone() *ValueItem {
	clone := *v
	clone.NodeNames = slices.Clone(v.NodeNames)
	clone.Values = slices.Clone(v.Values)
	clone.Format.Selection = slices.Clone(v.Format.Selection)
	clone.Format.Columns = slices.Clone(v.Format.Columns)
	return &clone
}
