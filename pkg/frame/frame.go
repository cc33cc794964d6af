/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frame.go
Description: Feature frame implementation for the Akaylee feature engine.
Provides an ordered collection of named typed columns over a shared row index
with column restriction, column binding, and copying. Rows are never dropped
or reordered by any frame operation.
*/

package frame

import "fmt"

// ErrColumnNotFound is returned when a requested column is absent from a frame
var ErrColumnNotFound = fmt.Errorf("column not found")

// Frame is a tabular structure with named columns over a shared row index.
// Column order is preserved; all columns have exactly len(index) values.
type Frame struct {
	index []int
	order []string
	cols  map[string]*Series
}

// New creates an empty frame over the given row index
func New(index []int) *Frame {
	idx := make([]int, len(index))
	copy(idx, index)
	return &Frame{
		index: idx,
		cols:  make(map[string]*Series),
	}
}

// RangeIndex returns the default row index 0..n-1
func RangeIndex(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}

// NumRows returns the number of rows in the frame
func (f *Frame) NumRows() int {
	return len(f.index)
}

// NumCols returns the number of columns in the frame
func (f *Frame) NumCols() int {
	return len(f.order)
}

// Index returns a copy of the row index
func (f *Frame) Index() []int {
	index := make([]int, len(f.index))
	copy(index, f.index)
	return index
}

// Columns returns the column names in frame order
func (f *Frame) Columns() []string {
	columns := make([]string, len(f.order))
	copy(columns, f.order)
	return columns
}

// Has reports whether the frame contains the named column
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Series returns the named column
func (f *Frame) Series(name string) (*Series, error) {
	s, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return s, nil
}

// AddSeries appends a column to the frame.
// The series length must match the row index and the name must be unused.
func (f *Frame) AddSeries(s *Series) error {
	if s.Len() != len(f.index) {
		return fmt.Errorf("series %q has %d values, frame has %d rows", s.Name(), s.Len(), len(f.index))
	}
	if _, exists := f.cols[s.Name()]; exists {
		return fmt.Errorf("duplicate column %q", s.Name())
	}
	f.cols[s.Name()] = s
	f.order = append(f.order, s.Name())
	return nil
}

// Select returns a new frame restricted to the given columns, in the given
// order, sharing this frame's row index
func (f *Frame) Select(names []string) (*Frame, error) {
	out := New(f.index)
	for _, name := range names {
		s, ok := f.cols[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		if err := out.AddSeries(s.Copy()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ColumnBind appends all columns of the other frames to a copy of this frame.
// All frames must have the same number of rows.
func (f *Frame) ColumnBind(others ...*Frame) (*Frame, error) {
	out := f.Copy()
	for _, other := range others {
		if other.NumRows() != f.NumRows() {
			return nil, fmt.Errorf("cannot bind frame with %d rows to frame with %d rows", other.NumRows(), f.NumRows())
		}
		for _, name := range other.order {
			if err := out.AddSeries(other.cols[name].Copy()); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Copy returns a deep copy of the frame
func (f *Frame) Copy() *Frame {
	out := New(f.index)
	for _, name := range f.order {
		out.cols[name] = f.cols[name].Copy()
		out.order = append(out.order, name)
	}
	return out
}
