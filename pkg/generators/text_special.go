/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: text_special.go
Description: Text special feature generator for the Akaylee feature engine.
Generates lexical statistics from raw text columns: character and word counts,
capital, lower, digit, and special character ratios, and per-symbol counts and
ratios. Generated columns carry the 'text_special' special type.
*/

package generators

import (
	"fmt"
	"math"

	"github.com/kleascm/akaylee-features/pkg/frame"
	"github.com/kleascm/akaylee-features/pkg/interfaces"
	"github.com/kleascm/akaylee-features/pkg/metadata"
)

// DefaultSymbols is the symbol set used when none is configured
var DefaultSymbols = []string{"!", "?", "@", "%", "$", "*", "&", "#", "^", ".", ":", " ", "/", ";", "-", "="}

// DefaultMaxBins is the bin count of the binning post generator prepended
// when bin features are enabled
const DefaultMaxBins = 10

// TextSpecialGenerator generates text specific features from incoming raw
// text columns. For every input column it emits six fixed statistics followed
// by a count and ratio column per configured symbol, in symbol order.
type TextSpecialGenerator struct {
	*Generator
	symbols []string
}

// NewTextSpecialGenerator creates a new text special generator.
// A nil symbols slice selects DefaultSymbols; a nil featuresIn is inferred
// at fit time. When binFeatures is true a BinnedGenerator is prepended to
// the post-generator chain so every generated column is binned.
func NewTextSpecialGenerator(symbols []string, featuresIn []string, binFeatures bool) *TextSpecialGenerator {
	if symbols == nil {
		symbols = make([]string, len(DefaultSymbols))
		copy(symbols, DefaultSymbols)
	}
	g := &TextSpecialGenerator{symbols: symbols}
	g.Generator = NewGenerator(g, featuresIn)
	if binFeatures {
		g.PrependPostGenerator(NewBinnedGenerator(DefaultMaxBins, nil))
	}
	return g
}

// FitAndTransform generates the text special features and places every
// generated column under the 'text_special' special type group
func (g *TextSpecialGenerator) FitAndTransform(X *frame.Frame) (*frame.Frame, map[string][]string, error) {
	out, err := g.TransformOnly(X)
	if err != nil {
		return nil, nil, err
	}
	special := map[string][]string{
		metadata.SpecialTextSpecial: out.Columns(),
	}
	return out, special, nil
}

// TransformOnly generates the text special features for every configured
// input column, in configured order, preserving the input row index
func (g *TextSpecialGenerator) TransformOnly(X *frame.Frame) (*frame.Frame, error) {
	features := X.Columns()
	if len(features) == 0 {
		return frame.New(X.Index()), nil
	}

	combined := make([]*frame.Frame, 0, len(features))
	for _, feature := range features {
		s, err := X.Series(feature)
		if err != nil {
			return nil, err
		}
		sub, err := g.generateTextSpecial(s, feature, X.Index())
		if err != nil {
			return nil, fmt.Errorf("failed to generate features for column %q: %w", feature, err)
		}
		combined = append(combined, sub)
	}
	return combined[0].ColumnBind(combined[1:]...)
}

// DefaultInferFeaturesInArgs returns the column selection this generator
// wants from an orchestrator: columns with the 'text' special type
func (g *TextSpecialGenerator) DefaultInferFeaturesInArgs() interfaces.InferFeaturesInArgs {
	return interfaces.InferFeaturesInArgs{
		RequiredSpecialTypes: []string{metadata.SpecialText},
	}
}

// Symbols returns the configured symbol set in order
func (g *TextSpecialGenerator) Symbols() []string {
	out := make([]string, len(g.symbols))
	copy(out, g.symbols)
	return out
}

// Name returns the name of this generator
func (g *TextSpecialGenerator) Name() string {
	return "TextSpecialGenerator"
}

// Description returns a description of this generator
func (g *TextSpecialGenerator) Description() string {
	return "Generates character, word, case, digit, and symbol statistics from raw text columns"
}

// generateTextSpecial computes all statistics for one input column
func (g *TextSpecialGenerator) generateTextSpecial(s *frame.Series, feature string, index []int) (*frame.Frame, error) {
	n := s.Len()
	charCounts := make([]float64, n)
	wordCounts := make([]float64, n)
	capitalRatios := make([]float64, n)
	lowerRatios := make([]float64, n)
	digitRatios := make([]float64, n)
	specialRatios := make([]float64, n)

	for i := 0; i < n; i++ {
		value := s.Str(i)
		charCounts[i] = float64(CharCount(value))
		wordCounts[i] = float64(WordCount(value))
		capitalRatios[i] = CapitalRatio(value)
		lowerRatios[i] = LowerRatio(value)
		digitRatios[i] = DigitRatio(value)
		specialRatios[i] = SpecialRatio(value)
	}

	out := frame.New(index)
	columns := []*frame.Series{
		frame.NewIntSeries(feature+".char_count", charCounts),
		frame.NewIntSeries(feature+".word_count", wordCounts),
		frame.NewFloatSeries(feature+".capital_ratio", capitalRatios),
		frame.NewFloatSeries(feature+".lower_ratio", lowerRatios),
		frame.NewFloatSeries(feature+".digit_ratio", digitRatios),
		frame.NewFloatSeries(feature+".special_ratio", specialRatios),
	}
	for _, column := range columns {
		if err := out.AddSeries(column); err != nil {
			return nil, err
		}
	}

	for _, symbol := range g.symbols {
		symbolCounts := make([]float64, n)
		symbolRatios := make([]float64, n)
		for i := 0; i < n; i++ {
			symbolCounts[i] = float64(SymbolCount(s.Str(i), symbol))
			ratio := symbolCounts[i] / charCounts[i]
			// Division by a zero char count is neutralized, never propagated
			if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
				ratio = 0
			}
			symbolRatios[i] = ratio
		}
		if err := out.AddSeries(frame.NewIntSeries(feature+".symbol_count."+symbol, symbolCounts)); err != nil {
			return nil, err
		}
		if err := out.AddSeries(frame.NewFloatSeries(feature+".symbol_ratio."+symbol, symbolRatios)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
