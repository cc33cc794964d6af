/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: CSV serialization for feature frames. Writes the row index and
every column of a frame in frame order, preserving row order end-to-end.
*/

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kleascm/akaylee-features/pkg/frame"
)

// Write serializes a frame as CSV to the writer. The first column is the row
// index under the header "index"; remaining columns follow frame order.
func Write(w io.Writer, f *frame.Frame) error {
	csvWriter := csv.NewWriter(w)

	columns := f.Columns()
	header := append([]string{"index"}, columns...)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	series := make([]*frame.Series, len(columns))
	for i, name := range columns {
		s, err := f.Series(name)
		if err != nil {
			return err
		}
		series[i] = s
	}

	index := f.Index()
	record := make([]string, len(columns)+1)
	for row := 0; row < f.NumRows(); row++ {
		record[0] = strconv.Itoa(index[row])
		for i, s := range series {
			record[i+1] = s.Str(row)
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", row, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteCSV serializes a frame to a CSV file at the given path
func WriteCSV(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	return Write(file, f)
}
