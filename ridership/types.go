package ridership

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
)

const (
	// NoCorrespondenceLabel is the source-data spelling of an empty
	// correspondence slot, also used when rendering one.
	NoCorrespondenceLabel = "Aucune"
	// CountColumn names the derived correspondence count column.
	CountColumn = "nb_corr"
)

// Correspondence is one interchange slot of a station: either a line
// identifier or no correspondence at all.
type Correspondence struct {
	Line    string
	Present bool
}

// NoCorrespondence returns the empty slot value.
func NoCorrespondence() Correspondence { return Correspondence{} }

// Line returns a slot holding the given line identifier.
func Line(id string) Correspondence { return Correspondence{Line: id, Present: true} }

func (c Correspondence) IsNone() bool { return !c.Present }

func (c Correspondence) String() string {
	if !c.Present {
		return NoCorrespondenceLabel
	}
	return c.Line
}

func (c Correspondence) MarshalJSON() ([]byte, error) {
	if !c.Present {
		return []byte("null"), nil
	}
	return json.Marshal(c.Line)
}

func (c *Correspondence) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = NoCorrespondence()
		return nil
	}
	var line string
	if err := json.Unmarshal(b, &line); err != nil {
		return err
	}
	*c = Line(line)
	return nil
}

// parseCorrespondence coerces a raw slot value. Missing, blank and the
// literal "Aucune" all mean no correspondence.
func parseCorrespondence(cell Cell) Correspondence {
	v := strings.TrimSpace(cell.Text)
	if !cell.Valid || v == "" || strings.EqualFold(v, NoCorrespondenceLabel) {
		return NoCorrespondence()
	}
	return Line(v)
}

// Cell is a raw field value. Valid is false when the row ended before the
// column.
type Cell struct {
	Text  string
	Valid bool
}

// Record is one row of the traffic table.
type Record struct {
	Network             string            `json:"network"`
	Station             string            `json:"station"`
	Traffic             dataset.NullFloat `json:"traffic"`
	Rank                dataset.NullFloat `json:"rank"`
	Arrondissement      dataset.NullInt   `json:"arrondissement"`
	Correspondences     []Correspondence  `json:"correspondences"`
	CorrespondenceCount int               `json:"correspondence_count"`
	Fields              map[string]Cell   `json:"-"`
}

// CountCorrespondences counts the slots holding a line.
func (r Record) CountCorrespondences() int {
	n := 0
	for _, c := range r.Correspondences {
		if !c.IsNone() {
			n++
		}
	}
	return n
}

// Table is a loaded traffic table. Columns lists the normalized header
// followed by CountColumn.
type Table struct {
	Columns []string
	Records []Record
	schema  Schema
}

func (t *Table) Len() int { return len(t.Records) }

// Schema returns the normalized schema the table was loaded with.
func (t *Table) Schema() Schema { return t.schema }

// Row renders a record in Columns order with the coerced values: missing
// numbers are blank and empty correspondence slots read "Aucune".
func (t *Table) Row(r Record) []string {
	slot := make(map[string]int, len(t.schema.Correspondences))
	for i, c := range t.schema.Correspondences {
		slot[c] = i
	}
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		switch {
		case col == CountColumn:
			out[i] = strconv.Itoa(r.CorrespondenceCount)
		case col == t.schema.Network:
			out[i] = r.Network
		case col == t.schema.Station:
			out[i] = r.Station
		case col == t.schema.Traffic:
			out[i] = r.Traffic.String()
		case col == t.schema.Rank:
			out[i] = r.Rank.String()
		case col == t.schema.Arrondissement:
			out[i] = r.Arrondissement.String()
		default:
			if j, ok := slot[col]; ok && j < len(r.Correspondences) {
				out[i] = r.Correspondences[j].String()
			} else {
				out[i] = r.Fields[col].Text
			}
		}
	}
	return out
}
