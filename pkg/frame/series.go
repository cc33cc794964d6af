/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: series.go
Description: Typed column storage for feature frames. Provides string, int, and
float series sharing a common interface for length, value access, and copying,
used as the building block for all tabular feature data.
*/

package frame

import "fmt"

// Dtype represents the storage type of a series
type Dtype int

const (
	DtypeString Dtype = iota
	DtypeInt
	DtypeFloat
)

// String returns the canonical name of the dtype family
func (d Dtype) String() string {
	switch d {
	case DtypeString:
		return "object"
	case DtypeInt:
		return "int"
	case DtypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Series is a single named column of homogeneous values.
// Int and float series share float64 backing storage; the dtype
// records which family the column belongs to.
type Series struct {
	name  string
	dtype Dtype
	strs  []string
	nums  []float64
}

// NewStringSeries creates a string series with the given values
func NewStringSeries(name string, values []string) *Series {
	return &Series{name: name, dtype: DtypeString, strs: values}
}

// NewIntSeries creates an int series backed by float64 storage
func NewIntSeries(name string, values []float64) *Series {
	return &Series{name: name, dtype: DtypeInt, nums: values}
}

// NewFloatSeries creates a float series with the given values
func NewFloatSeries(name string, values []float64) *Series {
	return &Series{name: name, dtype: DtypeFloat, nums: values}
}

// Name returns the column name of this series
func (s *Series) Name() string {
	return s.name
}

// Dtype returns the storage type of this series
func (s *Series) Dtype() Dtype {
	return s.dtype
}

// IsNumeric reports whether the series belongs to the int or float family
func (s *Series) IsNumeric() bool {
	return s.dtype == DtypeInt || s.dtype == DtypeFloat
}

// Len returns the number of values in the series
func (s *Series) Len() int {
	if s.dtype == DtypeString {
		return len(s.strs)
	}
	return len(s.nums)
}

// Str returns the string value at position i.
// Numeric series format their backing value.
func (s *Series) Str(i int) string {
	if s.dtype == DtypeString {
		return s.strs[i]
	}
	if s.dtype == DtypeInt {
		return fmt.Sprintf("%d", int64(s.nums[i]))
	}
	return fmt.Sprintf("%g", s.nums[i])
}

// Float returns the numeric value at position i.
// String series always return 0; callers check IsNumeric first.
func (s *Series) Float(i int) float64 {
	if s.dtype == DtypeString {
		return 0
	}
	return s.nums[i]
}

// Strings returns the backing string slice of a string series
func (s *Series) Strings() []string {
	return s.strs
}

// Floats returns the backing numeric slice of an int or float series
func (s *Series) Floats() []float64 {
	return s.nums
}

// Copy returns a deep copy of the series
func (s *Series) Copy() *Series {
	out := &Series{name: s.name, dtype: s.dtype}
	if s.strs != nil {
		out.strs = make([]string, len(s.strs))
		copy(out.strs, s.strs)
	}
	if s.nums != nil {
		out.nums = make([]float64, len(s.nums))
		copy(out.nums, s.nums)
	}
	return out
}

// Rename returns a copy of the series under a new column name
func (s *Series) Rename(name string) *Series {
	out := s.Copy()
	out.name = name
	return out
}
