/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inspect.go
Description: Inspect command implementation for the Akaylee feature engine.
Loads a tabular dataset and reports its shape and per-column type families so
callers can decide which columns qualify as text input.
*/

package commands

import (
	"context"
	"fmt"

	"github.com/kleascm/akaylee-features/pkg/dataset"
	"github.com/kleascm/akaylee-features/pkg/metadata"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunInspect loads a dataset and reports its column structure
func RunInspect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	inputPath := viper.GetString("inspect.input_path")
	timeout := viper.GetDuration("inspect.timeout")
	if inputPath == "" {
		return fmt.Errorf("input path is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	source := dataset.NewSource("input", "dataset under inspection", inputPath, timeout)
	X, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("Dataset: %s\n", inputPath)
	fmt.Printf("Rows:    %d\n", X.NumRows())
	fmt.Printf("Columns: %d\n", X.NumCols())
	fmt.Println()

	groups := metadata.RawTypeGroups(X)
	for family, columns := range groups {
		fmt.Printf("%s (%d):\n", family, len(columns))
		for _, name := range columns {
			s, err := X.Series(name)
			if err != nil {
				continue
			}
			sample := ""
			if s.Len() > 0 {
				sample = s.Str(0)
				if len(sample) > 40 {
					sample = sample[:40] + "..."
				}
			}
			fmt.Printf("  %-24s e.g. %q\n", name, sample)
		}
	}

	return nil
}
