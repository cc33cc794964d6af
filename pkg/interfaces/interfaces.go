/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Akaylee feature engine. Defines the
feature generator contract and pipeline configuration types used across all
packages to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"time"

	"github.com/kleascm/akaylee-features/pkg/frame"
	"github.com/kleascm/akaylee-features/pkg/metadata"
)

// FeatureGenerator is the fit-once/transform-many contract implemented by
// every generator in the engine. FitTransform must be called exactly once
// per instance; Transform may be called any number of times afterwards.
type FeatureGenerator interface {
	// FitTransform fits the generator on a frame and returns the generated
	// output frame. Fails if the generator is already fit.
	FitTransform(X *frame.Frame) (*frame.Frame, error)

	// Transform applies the fitted generator to a frame.
	// Fails if the generator is not yet fit.
	Transform(X *frame.Frame) (*frame.Frame, error)

	// FeaturesIn returns the fitted input column names
	FeaturesIn() []string

	// FeaturesOut returns the output column names produced at fit time
	FeaturesOut() []string

	// IsFit reports whether the generator has been fit
	IsFit() bool

	// Metadata returns the fitted feature-type metadata
	Metadata() *metadata.FeatureTypes

	// Name returns the name of this generator
	Name() string

	// Description returns a description of this generator
	Description() string
}

// InferFeaturesInArgs describes the input columns a generator wants when an
// orchestrator infers them on its behalf before construction
type InferFeaturesInArgs struct {
	RequiredSpecialTypes []string
}

// PipelineConfig represents the configuration for a featurization run
type PipelineConfig struct {
	InputPath   string
	OutputPath  string
	Columns     []string
	Symbols     []string
	BinFeatures bool
	CleanHTML   bool
	DedupRows   bool
	Timeout     time.Duration
}
