/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Base feature generator lifecycle for the Akaylee feature engine.
Implements the fit-once/transform-many orchestration shared by all generators:
input column inference and restriction, delegate hook dispatch, post-generator
chaining, output column bookkeeping, and feature-type metadata capture.
*/

package generators

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-features/pkg/frame"
	"github.com/kleascm/akaylee-features/pkg/interfaces"
	"github.com/kleascm/akaylee-features/pkg/metadata"
	"github.com/sirupsen/logrus"
)

var (
	// ErrAlreadyFit is returned when FitTransform is called on a fit generator
	ErrAlreadyFit = errors.New("feature generator is already fit")

	// ErrNotFit is returned when Transform is called on an unfit generator
	ErrNotFit = errors.New("feature generator is not fit")
)

// Delegate is the hook pair a concrete generator provides to the lifecycle.
// TransformOnly must be a pure function of its input and the generator's
// fitted configuration; FitAndTransform may store fitted state.
type Delegate interface {
	// FitAndTransform fits on the restricted input frame and returns the
	// output frame plus the special type groups of the generated columns
	FitAndTransform(X *frame.Frame) (*frame.Frame, map[string][]string, error)

	// TransformOnly applies the fitted configuration to the restricted input
	TransformOnly(X *frame.Frame) (*frame.Frame, error)
}

// Generator is the concrete lifecycle orchestrator embedded by every
// generator in the engine. A Generator instance moves from unfit to fit
// exactly once and is immutable afterwards.
type Generator struct {
	id             string
	delegate       Delegate
	featuresIn     []string
	featuresOut    []string
	isFit          bool
	types          *metadata.FeatureTypes
	postGenerators []interfaces.FeatureGenerator
}

// NewGenerator creates an unfit lifecycle for the given delegate.
// A nil featuresIn is inferred from the first frame passed to FitTransform.
func NewGenerator(delegate Delegate, featuresIn []string) *Generator {
	g := &Generator{
		id:       uuid.New().String(),
		delegate: delegate,
	}
	if featuresIn != nil {
		g.featuresIn = make([]string, len(featuresIn))
		copy(g.featuresIn, featuresIn)
	}
	return g
}

// PrependPostGenerator inserts a post-processing generator at the front of
// the post chain. Post generators are fit inline during FitTransform and
// applied in order after the delegate's own transform.
func (g *Generator) PrependPostGenerator(post interfaces.FeatureGenerator) {
	g.postGenerators = append([]interfaces.FeatureGenerator{post}, g.postGenerators...)
}

// FitTransform fits the generator on a frame and returns the output frame.
// Must be called exactly once per instance.
func (g *Generator) FitTransform(X *frame.Frame) (*frame.Frame, error) {
	if g.isFit {
		return nil, fmt.Errorf("cannot fit: %w", ErrAlreadyFit)
	}

	// Infer input columns from the frame when none were configured
	if g.featuresIn == nil {
		g.featuresIn = X.Columns()
	}

	Xin, err := X.Select(g.featuresIn)
	if err != nil {
		return nil, fmt.Errorf("failed to restrict input columns: %w", err)
	}

	out, special, err := g.delegate.FitAndTransform(Xin)
	if err != nil {
		return nil, fmt.Errorf("fit transform failed: %w", err)
	}

	for _, post := range g.postGenerators {
		out, err = post.FitTransform(out)
		if err != nil {
			return nil, fmt.Errorf("post generator %s failed to fit: %w", post.Name(), err)
		}
	}

	g.featuresOut = out.Columns()
	g.types = metadata.NewFeatureTypes(metadata.RawTypeGroups(out), special)
	g.isFit = true

	logrus.WithFields(logrus.Fields{
		"generator_id": g.id,
		"features_in":  len(g.featuresIn),
		"features_out": len(g.featuresOut),
		"rows":         out.NumRows(),
	}).Debug("Generator fit complete")

	return out, nil
}

// Transform applies the fitted generator to a frame. Idempotent given the
// same input; callable any number of times after fitting.
func (g *Generator) Transform(X *frame.Frame) (*frame.Frame, error) {
	if !g.isFit {
		return nil, fmt.Errorf("cannot transform: %w", ErrNotFit)
	}

	Xin, err := X.Select(g.featuresIn)
	if err != nil {
		return nil, fmt.Errorf("failed to restrict input columns: %w", err)
	}

	out, err := g.delegate.TransformOnly(Xin)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}

	for _, post := range g.postGenerators {
		out, err = post.Transform(out)
		if err != nil {
			return nil, fmt.Errorf("post generator %s failed to transform: %w", post.Name(), err)
		}
	}

	return out, nil
}

// ID returns the unique identifier of this generator instance
func (g *Generator) ID() string {
	return g.id
}

// IsFit reports whether the generator has been fit
func (g *Generator) IsFit() bool {
	return g.isFit
}

// FeaturesIn returns the fitted input column names
func (g *Generator) FeaturesIn() []string {
	out := make([]string, len(g.featuresIn))
	copy(out, g.featuresIn)
	return out
}

// FeaturesOut returns the output column names recorded at fit time
func (g *Generator) FeaturesOut() []string {
	out := make([]string, len(g.featuresOut))
	copy(out, g.featuresOut)
	return out
}

// Metadata returns the fitted feature-type metadata
func (g *Generator) Metadata() *metadata.FeatureTypes {
	return g.types
}

// PostGenerators returns the post-processing chain in application order
func (g *Generator) PostGenerators() []interfaces.FeatureGenerator {
	out := make([]interfaces.FeatureGenerator, len(g.postGenerators))
	copy(out, g.postGenerators)
	return out
}
