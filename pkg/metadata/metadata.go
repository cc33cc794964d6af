/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: metadata.go
Description: Feature-type metadata for the Akaylee feature engine. Groups
generated output columns by raw dtype family and by semantic special type,
and provides the dtype inspection utility used by the generator lifecycle
after every fit.
*/

package metadata

import (
	"sort"

	"github.com/kleascm/akaylee-features/pkg/frame"
)

// Special type labels attached to generated columns
const (
	SpecialText        = "text"
	SpecialTextSpecial = "text_special"
	SpecialBinned      = "binned"
)

// FeatureTypes holds the fitted type metadata of a generator.
// Raw groups are derived from output column dtypes; special groups are
// semantic categories supplied by the generator itself.
type FeatureTypes struct {
	Raw     map[string][]string
	Special map[string][]string
}

// NewFeatureTypes creates feature-type metadata from raw and special groups.
// Nil maps are normalized to empty maps.
func NewFeatureTypes(raw, special map[string][]string) *FeatureTypes {
	if raw == nil {
		raw = make(map[string][]string)
	}
	if special == nil {
		special = make(map[string][]string)
	}
	return &FeatureTypes{Raw: raw, Special: special}
}

// SpecialFeatures returns the columns of one special type group
func (m *FeatureTypes) SpecialFeatures(label string) []string {
	return m.Special[label]
}

// RawFamilies returns the raw dtype family labels in sorted order
func (m *FeatureTypes) RawFamilies() []string {
	families := make([]string, 0, len(m.Raw))
	for family := range m.Raw {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// RawTypeGroups inspects a frame and groups its column names by dtype family.
// Column order within each group follows frame column order.
func RawTypeGroups(f *frame.Frame) map[string][]string {
	groups := make(map[string][]string)
	for _, name := range f.Columns() {
		s, err := f.Series(name)
		if err != nil {
			continue
		}
		family := s.Dtype().String()
		groups[family] = append(groups[family], name)
	}
	return groups
}
