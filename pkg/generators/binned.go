/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: binned.go
Description: Binning feature generator for the Akaylee feature engine. Learns
quantile bin edges for numeric columns at fit time and maps values to bin
ordinals in place, keeping column names. Used as the default post generator of
the text special generator to reduce overfitting on sparse statistics.
*/

package generators

import (
	"sort"

	"github.com/kleascm/akaylee-features/pkg/frame"
	"github.com/kleascm/akaylee-features/pkg/metadata"
)

// BinnedGenerator maps numeric columns to quantile bin ordinals.
// Non-numeric columns pass through untouched.
type BinnedGenerator struct {
	*Generator
	maxBins int
	edges   map[string][]float64
}

// NewBinnedGenerator creates a new binning generator with at most maxBins
// bins per column. A maxBins of 0 or less selects DefaultMaxBins.
func NewBinnedGenerator(maxBins int, featuresIn []string) *BinnedGenerator {
	if maxBins <= 0 {
		maxBins = DefaultMaxBins
	}
	b := &BinnedGenerator{
		maxBins: maxBins,
		edges:   make(map[string][]float64),
	}
	b.Generator = NewGenerator(b, featuresIn)
	return b
}

// FitAndTransform learns bin edges for every numeric column and returns the
// binned frame with all binned columns under the 'binned' special type group
func (b *BinnedGenerator) FitAndTransform(X *frame.Frame) (*frame.Frame, map[string][]string, error) {
	var binned []string
	for _, name := range X.Columns() {
		s, err := X.Series(name)
		if err != nil {
			return nil, nil, err
		}
		if !s.IsNumeric() {
			continue
		}
		b.edges[name] = quantileEdges(s.Floats(), b.maxBins)
		binned = append(binned, name)
	}

	out, err := b.TransformOnly(X)
	if err != nil {
		return nil, nil, err
	}
	special := map[string][]string{
		metadata.SpecialBinned: binned,
	}
	return out, special, nil
}

// TransformOnly maps every fitted column to its bin ordinal, in place
func (b *BinnedGenerator) TransformOnly(X *frame.Frame) (*frame.Frame, error) {
	out := frame.New(X.Index())
	for _, name := range X.Columns() {
		s, err := X.Series(name)
		if err != nil {
			return nil, err
		}
		edges, fitted := b.edges[name]
		if !fitted || !s.IsNumeric() {
			if err := out.AddSeries(s.Copy()); err != nil {
				return nil, err
			}
			continue
		}
		values := s.Floats()
		ordinals := make([]float64, len(values))
		for i, v := range values {
			ordinals[i] = float64(binOrdinal(edges, v))
		}
		if err := out.AddSeries(frame.NewIntSeries(name, ordinals)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MaxBins returns the configured maximum bin count
func (b *BinnedGenerator) MaxBins() int {
	return b.maxBins
}

// Name returns the name of this generator
func (b *BinnedGenerator) Name() string {
	return "BinnedGenerator"
}

// Description returns a description of this generator
func (b *BinnedGenerator) Description() string {
	return "Maps numeric columns to quantile bin ordinals learned at fit time"
}

// quantileEdges computes up to maxBins-1 distinct quantile cut points from
// the observed values
func quantileEdges(values []float64, maxBins int) []float64 {
	if len(values) == 0 || maxBins < 2 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var edges []float64
	for i := 1; i < maxBins; i++ {
		pos := i * len(sorted) / maxBins
		if pos >= len(sorted) {
			pos = len(sorted) - 1
		}
		cut := sorted[pos]
		if len(edges) == 0 || cut > edges[len(edges)-1] {
			edges = append(edges, cut)
		}
	}
	return edges
}

// binOrdinal returns the bin index of v: the number of edges at or below v
func binOrdinal(edges []float64, v float64) int {
	return sort.Search(len(edges), func(i int) bool { return edges[i] > v })
}
