/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: HTML cleanup for raw text columns. Strips markup from scraped
text values ahead of featurization so that lexical statistics measure the
visible text, not the tags around it.
*/

package dataset

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/akaylee-features/pkg/frame"
)

// CleanHTML strips markup from a single value and collapses the remaining
// whitespace to single spaces
func CleanHTML(value string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// CleanHTMLColumns returns a copy of the frame with markup stripped from the
// named string columns. Non-string columns among the names are an error.
func CleanHTMLColumns(f *frame.Frame, columns []string) (*frame.Frame, error) {
	out := frame.New(f.Index())
	targets := make(map[string]bool, len(columns))
	for _, name := range columns {
		targets[name] = true
	}

	for _, name := range f.Columns() {
		s, err := f.Series(name)
		if err != nil {
			return nil, err
		}
		if !targets[name] {
			if err := out.AddSeries(s.Copy()); err != nil {
				return nil, err
			}
			continue
		}
		if s.Dtype() != frame.DtypeString {
			return nil, fmt.Errorf("cannot clean non-string column %q", name)
		}
		values := s.Strings()
		cleaned := make([]string, len(values))
		for i, value := range values {
			text, err := CleanHTML(value)
			if err != nil {
				return nil, fmt.Errorf("failed to clean column %q row %d: %w", name, i, err)
			}
			cleaned[i] = text
		}
		if err := out.AddSeries(frame.NewStringSeries(name, cleaned)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
