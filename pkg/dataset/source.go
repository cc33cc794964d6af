/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Tabular dataset source for the Akaylee feature engine. Loads CSV
datasets from HTTP, HTTPS, or local files into feature frames with optional
row deduplication, error handling, and logging for robust pipeline input.
*/

package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kleascm/akaylee-features/pkg/frame"
)

// Source loads a tabular dataset from an HTTP, HTTPS, or local file location.
// The first CSV record is the header; every column loads as a string series
// over the row index 0..n-1.
type Source struct {
	NameStr        string
	DescriptionStr string
	Location       string
	Timeout        time.Duration
	DedupRows      bool

	dedupSet map[string]struct{}
	mu       sync.Mutex
}

// NewSource creates a new dataset source
func NewSource(name, desc, location string, timeout time.Duration) *Source {
	return &Source{
		NameStr:        name,
		DescriptionStr: desc,
		Location:       location,
		Timeout:        timeout,
		dedupSet:       make(map[string]struct{}),
	}
}

func (s *Source) Name() string        { return s.NameStr }
func (s *Source) Description() string { return s.DescriptionStr }

// Load fetches and parses the dataset, returning a frame of string columns
func (s *Source) Load(ctx context.Context) (*frame.Frame, error) {
	var reader io.Reader
	var closer io.Closer

	if strings.HasPrefix(s.Location, "http://") || strings.HasPrefix(s.Location, "https://") {
		client := &http.Client{Timeout: s.Timeout}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build dataset request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("dataset returned status %d", resp.StatusCode)
		}
		reader = resp.Body
		closer = resp.Body
	} else {
		file, err := os.Open(s.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset file: %w", err)
		}
		reader = file
		closer = file
	}
	if closer != nil {
		defer closer.Close()
	}

	return s.parseCSV(reader)
}

// parseCSV reads the header and rows into a frame of string series
func (s *Source) parseCSV(reader io.Reader) (*frame.Frame, error) {
	csvReader := csv.NewReader(reader)
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset is empty: no header record")
	}

	header := records[0]
	rows := records[1:]

	if s.DedupRows {
		unique := rows[:0]
		for _, row := range rows {
			if s.isUnique(row) {
				unique = append(unique, row)
			}
		}
		rows = unique
	}

	out := frame.New(frame.RangeIndex(len(rows)))
	for col, name := range header {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[col]
		}
		if err := out.AddSeries(frame.NewStringSeries(name, values)); err != nil {
			return nil, fmt.Errorf("failed to load column %q: %w", name, err)
		}
	}
	return out, nil
}

// isUnique checks if the row is new (deduplication by SHA256)
func (s *Source) isUnique(row []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(row, "\x1f"))))
	if _, exists := s.dedupSet[hash]; exists {
		return false
	}
	s.dedupSet[hash] = struct{}{}
	return true
}
