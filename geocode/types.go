package geocode

import "github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"

const (
	colStation = "station"
	colLat     = "lat"
	colLon     = "lon"
	colNetwork = "reseau"
	colTraffic = "trafic"
	colCount   = "nb_corr"
)

// GeoStation is one row of the geocoded table.
type GeoStation struct {
	Station             string            `json:"station"`
	Lat                 dataset.NullFloat `json:"lat"`
	Lon                 dataset.NullFloat `json:"lon"`
	Network             string            `json:"network"`
	Traffic             dataset.NullFloat `json:"traffic"`
	CorrespondenceCount dataset.NullInt   `json:"correspondence_count"`
}

// HasCoordinates reports whether the station can be placed on a map.
func (g GeoStation) HasCoordinates() bool {
	return g.Lat.Valid && g.Lon.Valid
}

// Table is a loaded geocoded station table.
type Table struct {
	Columns  []string
	Stations []GeoStation
}

func (t *Table) Len() int { return len(t.Stations) }

// Mappable returns the stations that have both coordinates, in file order.
func (t *Table) Mappable() []GeoStation {
	out := make([]GeoStation, 0, len(t.Stations))
	for _, s := range t.Stations {
		if s.HasCoordinates() {
			out = append(out, s)
		}
	}
	return out
}
