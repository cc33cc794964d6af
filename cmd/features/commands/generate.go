/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation for the Akaylee feature engine.
Loads a tabular dataset, runs the text special generator over the configured
text columns, and writes the resulting feature table with summary reporting.
*/

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kleascm/akaylee-features/pkg/dataset"
	"github.com/kleascm/akaylee-features/pkg/frame"
	"github.com/kleascm/akaylee-features/pkg/generators"
	"github.com/kleascm/akaylee-features/pkg/interfaces"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGenerate executes the featurization pipeline
func RunGenerate(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Akaylee Features - Starting Featurization")
	fmt.Println("============================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	// Create pipeline configuration
	config := createPipelineConfig()
	if err := validatePipelineConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	// Load the dataset
	source := dataset.NewSource("input", "featurization input dataset", config.InputPath, config.Timeout)
	source.DedupRows = config.DedupRows

	loadStart := time.Now()
	X, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.LogDataset(config.InputPath, X.NumRows(), X.NumCols(), time.Since(loadStart))

	// Strip markup from text columns ahead of featurization if requested
	if config.CleanHTML {
		targets := config.Columns
		if len(targets) == 0 {
			targets = X.Columns()
		}
		X, err = dataset.CleanHTMLColumns(X, targets)
		if err != nil {
			return fmt.Errorf("failed to clean HTML: %w", err)
		}
	}

	// Create and fit the generator
	generator := newTextSpecialGenerator(config)

	fitStart := time.Now()
	out, err := generator.FitTransform(X)
	if err != nil {
		return fmt.Errorf("failed to fit transform: %w", err)
	}
	logger.LogFit(generator.Name(), generator.ID(), len(generator.FeaturesIn()), len(generator.FeaturesOut()), time.Since(fitStart))

	// Write the feature table
	if err := dataset.WriteCSV(config.OutputPath, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSummary(config, generator, out)

	fmt.Println("\n✨ Featurization completed!")
	return nil
}

// createPipelineConfig builds the pipeline configuration from viper settings
func createPipelineConfig() *interfaces.PipelineConfig {
	return &interfaces.PipelineConfig{
		InputPath:   viper.GetString("input_path"),
		OutputPath:  viper.GetString("output_path"),
		Columns:     viper.GetStringSlice("columns"),
		Symbols:     viper.GetStringSlice("symbols"),
		BinFeatures: viper.GetBool("bin_features"),
		CleanHTML:   viper.GetBool("html_clean"),
		DedupRows:   viper.GetBool("dedup_rows"),
		Timeout:     viper.GetDuration("timeout"),
	}
}

// validatePipelineConfig checks the pipeline configuration for missing values
func validatePipelineConfig(config *interfaces.PipelineConfig) error {
	if config.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if config.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// newTextSpecialGenerator constructs the generator from the pipeline config
func newTextSpecialGenerator(config *interfaces.PipelineConfig) *generators.TextSpecialGenerator {
	var symbols []string
	if len(config.Symbols) > 0 {
		symbols = config.Symbols
	}
	var columns []string
	if len(config.Columns) > 0 {
		columns = config.Columns
	}
	return generators.NewTextSpecialGenerator(symbols, columns, config.BinFeatures)
}

// printSummary prints the final featurization statistics
func printSummary(config *interfaces.PipelineConfig, generator *generators.TextSpecialGenerator, out *frame.Frame) {
	fmt.Println("\n📊 Featurization Summary")
	fmt.Println("------------------------")
	fmt.Printf("Input columns:   %d\n", len(generator.FeaturesIn()))
	fmt.Printf("Output columns:  %d\n", len(generator.FeaturesOut()))
	fmt.Printf("Rows:            %d\n", out.NumRows())
	fmt.Printf("Symbols:         %d\n", len(generator.Symbols()))
	fmt.Printf("Output file:     %s\n", config.OutputPath)

	if metadata := generator.Metadata(); metadata != nil {
		for _, family := range metadata.RawFamilies() {
			fmt.Printf("Raw type %-8s %d columns\n", family+":", len(metadata.Raw[family]))
		}
	}
}
