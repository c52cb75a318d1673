package ridership

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
)

// Load reads and parses the traffic file at path.
func Load(path string, schema Schema) (*Table, error) {
	b, err := dataset.ReadRaw(path)
	if err != nil {
		return nil, err
	}
	tbl, err := Parse(bytes.NewReader(b), schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// Parse reads a traffic file from r.
func Parse(r io.Reader, schema Schema) (*Table, error) {
	text, err := dataset.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := rawLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no header line", dataset.ErrFileAccess)
	}

	header, err := dataset.NormalizeHeaders(strings.Split(lines[0], ";"))
	if err != nil {
		return nil, err
	}
	idx := dataset.Index(header)
	schema = schema.normalized()
	if err := schema.check(idx); err != nil {
		return nil, err
	}

	columns := header
	if _, ok := idx[CountColumn]; !ok {
		columns = append(append([]string{}, header...), CountColumn)
	}

	tbl := &Table{
		Columns: columns,
		Records: make([]Record, 0, len(lines)-1),
		schema:  schema,
	}
	for n, line := range lines[1:] {
		parts := strings.Split(line, ";")
		if len(parts) > len(header) {
			return nil, fmt.Errorf("%w: data row %d has %d fields, header has %d",
				dataset.ErrSchema, n+1, len(parts), len(header))
		}
		tbl.Records = append(tbl.Records, buildRecord(header, parts, schema))
	}
	return tbl, nil
}

func buildRecord(header, parts []string, schema Schema) Record {
	fields := make(map[string]Cell, len(header))
	for i, col := range header {
		if i < len(parts) {
			fields[col] = Cell{Text: parts[i], Valid: true}
		} else {
			fields[col] = Cell{}
		}
	}

	rec := Record{Fields: fields}
	if schema.Network != "" {
		rec.Network = schema.canonicalNetwork(strings.TrimSpace(fields[schema.Network].Text))
	}
	if schema.Station != "" {
		rec.Station = strings.TrimSpace(fields[schema.Station].Text)
	}
	if schema.Traffic != "" {
		rec.Traffic = dataset.ParseFloat(fields[schema.Traffic].Text)
	}
	if schema.Rank != "" {
		rec.Rank = dataset.ParseFloat(fields[schema.Rank].Text)
	}
	if schema.Arrondissement != "" {
		rec.Arrondissement = dataset.ParseCode(fields[schema.Arrondissement].Text)
	}
	rec.Correspondences = make([]Correspondence, len(schema.Correspondences))
	for i, col := range schema.Correspondences {
		rec.Correspondences[i] = parseCorrespondence(fields[col])
	}
	rec.CorrespondenceCount = rec.CountCorrespondences()
	return rec
}

// rawLines is the first parsing phase: each non-blank line is read as a
// single field, with surrounding double quotes removed.
func rawLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, unquote(line))
	}
	return out
}

func unquote(field string) string {
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		return strings.ReplaceAll(field[1:len(field)-1], `""`, `"`)
	}
	return field
}
