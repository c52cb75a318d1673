package geocode

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
)

// Load reads and parses the geocoded station file at path. aliases rewrites
// network labels the same way the traffic table does.
func Load(path string, aliases map[string]string) (*Table, error) {
	b, err := dataset.ReadRaw(path)
	if err != nil {
		return nil, err
	}
	tbl, err := Parse(bytes.NewReader(b), aliases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// Parse reads a geocoded station table from r.
func Parse(r io.Reader, aliases map[string]string) (*Table, error) {
	text, err := dataset.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	raw, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", dataset.ErrSchema, err)
	}
	header, err := dataset.NormalizeHeaders(raw)
	if err != nil {
		return nil, err
	}
	idx := dataset.Index(header)
	for _, c := range []string{colStation, colLat, colLon} {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: required column %q not found in header", dataset.ErrSchema, c)
		}
	}

	get := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	tbl := &Table{Columns: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", dataset.ErrSchema, err)
		}
		network := get(row, colNetwork)
		if alias, ok := aliases[network]; ok {
			network = alias
		}
		tbl.Stations = append(tbl.Stations, GeoStation{
			Station:             get(row, colStation),
			Lat:                 coordinate(get(row, colLat), 90),
			Lon:                 coordinate(get(row, colLon), 180),
			Network:             network,
			Traffic:             dataset.ParseFloat(get(row, colTraffic)),
			CorrespondenceCount: dataset.ParseCode(get(row, colCount)),
		})
	}
	return tbl, nil
}

// coordinate parses a latitude or longitude; values beyond ±limit are
// treated as missing.
func coordinate(s string, limit float64) dataset.NullFloat {
	v := dataset.ParseFloat(s)
	if v.Valid && (v.Float64 < -limit || v.Float64 > limit) {
		return dataset.NullFloat{}
	}
	return v
}
