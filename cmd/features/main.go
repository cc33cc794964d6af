/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee feature engine.
Provides command-line options, configuration management, and logging control
for running text featurization on tabular datasets.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/akaylee-features/cmd/features/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int

	// Dataset configuration
	inputPath  string
	outputPath string
	dedupRows  bool
	timeout    time.Duration

	// Generator configuration
	columns     []string
	symbols     []string
	binFeatures bool
	htmlClean   bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-features",
		Short: "Akaylee Features - Text feature generation engine for tabular datasets",
		Long: `Akaylee Features is a feature-engineering engine that derives lexical and
statistical features from text columns in tabular datasets: character and word
counts, case and digit ratios, and per-symbol frequencies. Designed as the text
featurization stage of a larger machine-learning pipeline.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate text special features from a tabular dataset",
		Long: `Load a CSV dataset from a local path or URL, compute text special features
for the configured text columns, and write the resulting feature table. The row
index of the input is preserved end-to-end.`,
		RunE: commands.RunGenerate,
	}

	generateCmd.Flags().StringVar(&inputPath, "input", "", "Input dataset path or URL (required)")
	generateCmd.Flags().StringVar(&outputPath, "output", "./features.csv", "Output CSV path")
	generateCmd.Flags().StringSliceVar(&columns, "columns", []string{}, "Text columns to featurize (default: all columns)")
	generateCmd.Flags().StringSliceVar(&symbols, "symbols", []string{}, "Symbols to count (default: built-in symbol set)")
	generateCmd.Flags().BoolVar(&binFeatures, "bin-features", true, "Bin generated features into quantile ordinals")
	generateCmd.Flags().BoolVar(&htmlClean, "html-clean", false, "Strip HTML markup from text columns before featurization")
	generateCmd.Flags().BoolVar(&dedupRows, "dedup", false, "Drop duplicate dataset rows while loading")
	generateCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Dataset fetch timeout")

	generateCmd.MarkFlagRequired("input")

	viper.BindPFlag("input_path", generateCmd.Flags().Lookup("input"))
	viper.BindPFlag("output_path", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("columns", generateCmd.Flags().Lookup("columns"))
	viper.BindPFlag("symbols", generateCmd.Flags().Lookup("symbols"))
	viper.BindPFlag("bin_features", generateCmd.Flags().Lookup("bin-features"))
	viper.BindPFlag("html_clean", generateCmd.Flags().Lookup("html-clean"))
	viper.BindPFlag("dedup_rows", generateCmd.Flags().Lookup("dedup"))
	viper.BindPFlag("timeout", generateCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(generateCmd)

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the columns of a tabular dataset",
		Long: `Load a CSV dataset and report its shape and per-column type families.
Useful for deciding which columns qualify as text input before featurization.`,
		RunE: commands.RunInspect,
	}

	inspectCmd.Flags().StringVar(&inputPath, "input", "", "Input dataset path or URL (required)")
	inspectCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Dataset fetch timeout")
	inspectCmd.MarkFlagRequired("input")

	viper.BindPFlag("inspect.input_path", inspectCmd.Flags().Lookup("input"))
	viper.BindPFlag("inspect.timeout", inspectCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(inspectCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
