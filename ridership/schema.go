package ridership

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
)

// Schema names the columns of the traffic table that carry meaning. Names
// are matched against normalized header tokens. An empty name disables the
// corresponding field.
type Schema struct {
	Network         string
	Station         string
	Traffic         string
	Rank            string
	Arrondissement  string
	Correspondences []string
	// NetworkAliases rewrites network labels at load time, e.g. "Métro" to
	// "Metro", so that a network has a single spelling in the table.
	NetworkAliases map[string]string
}

// DefaultSchema matches the RATP annual traffic export.
func DefaultSchema() Schema {
	return Schema{
		Network:        "reseau",
		Station:        "station",
		Traffic:        "trafic",
		Rank:           "rang",
		Arrondissement: "arrondissement_pour_paris",
		Correspondences: []string{
			"correspondance_1",
			"correspondance_2",
			"correspondance_3",
			"correspondance_4",
			"correspondance_5",
		},
		NetworkAliases: map[string]string{"Métro": "Metro"},
	}
}

// normalized returns a copy with every column name passed through
// dataset.NormalizeHeader.
func (s Schema) normalized() Schema {
	out := s
	out.Network = normalizeName(s.Network)
	out.Station = normalizeName(s.Station)
	out.Traffic = normalizeName(s.Traffic)
	out.Rank = normalizeName(s.Rank)
	out.Arrondissement = normalizeName(s.Arrondissement)
	out.Correspondences = make([]string, len(s.Correspondences))
	for i, c := range s.Correspondences {
		out.Correspondences[i] = normalizeName(c)
	}
	return out
}

func normalizeName(s string) string {
	if s == "" {
		return ""
	}
	return dataset.NormalizeHeader(s)
}

// required lists every named column.
func (s Schema) required() []string {
	var cols []string
	for _, c := range []string{s.Network, s.Station, s.Traffic, s.Rank, s.Arrondissement} {
		if c != "" {
			cols = append(cols, c)
		}
	}
	return append(cols, s.Correspondences...)
}

// correspondenceMarker identifies a correspondence slot in a normalized
// header token.
const correspondenceMarker = "correspondance"

// check verifies that the header carries every named column, that the
// named columns are distinct and that every correspondence column of the
// header is a configured slot.
func (s Schema) check(idx map[string]int) error {
	seen := map[string]bool{}
	for _, c := range s.required() {
		if c == "" {
			return fmt.Errorf("%w: blank correspondence column name", dataset.ErrSchema)
		}
		if seen[c] {
			return fmt.Errorf("%w: column %q is mapped twice", dataset.ErrSchema, c)
		}
		seen[c] = true
		if _, ok := idx[c]; !ok {
			return fmt.Errorf("%w: required column %q not found in header", dataset.ErrSchema, c)
		}
	}
	slots := make(map[string]bool, len(s.Correspondences))
	for _, c := range s.Correspondences {
		slots[c] = true
	}
	for col := range idx {
		if strings.Contains(col, correspondenceMarker) && !slots[col] {
			return fmt.Errorf("%w: correspondence column %q is not configured", dataset.ErrSchema, col)
		}
	}
	return nil
}

func (s Schema) canonicalNetwork(label string) string {
	if alias, ok := s.NetworkAliases[label]; ok {
		return alias
	}
	return label
}
