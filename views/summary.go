package views

import (
	"sort"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/geocode"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
)

// Summary holds the key figures of a set of records. Missing traffic values
// are ignored. Over an empty set, or one without any traffic value, the
// totals are zero and HasBusiest is false.
type Summary struct {
	TotalTraffic   float64 `json:"total_traffic"`
	StationCount   int     `json:"station_count"`
	BusiestStation string  `json:"busiest_station,omitempty"`
	HasBusiest     bool    `json:"has_busiest"`
	MeanTraffic    int64   `json:"mean_traffic"`
}

// Summarize computes the key figures. The busiest station is the first
// record holding the highest traffic; the mean is truncated toward zero.
func Summarize(records []ridership.Record) Summary {
	var s Summary
	stations := map[string]bool{}
	valid := 0
	best := -1
	for i, r := range records {
		if r.Station != "" {
			stations[r.Station] = true
		}
		if !r.Traffic.Valid {
			continue
		}
		s.TotalTraffic += r.Traffic.Float64
		valid++
		if best < 0 || r.Traffic.Float64 > records[best].Traffic.Float64 {
			best = i
		}
	}
	s.StationCount = len(stations)
	if best >= 0 {
		s.BusiestStation = records[best].Station
		s.HasBusiest = true
	}
	if valid > 0 {
		s.MeanTraffic = int64(s.TotalTraffic / float64(valid))
	}
	return s
}

// NetworkShare is one slice of the traffic share chart.
type NetworkShare struct {
	Network string  `json:"network"`
	Traffic float64 `json:"traffic"`
	Share   float64 `json:"share"`
	Color   string  `json:"color,omitempty"`
}

// TrafficShare sums traffic per network, sorted by network label. Share is
// the fraction of the overall total, zero when there is no traffic at all.
func TrafficShare(records []ridership.Record, palette map[string]string) []NetworkShare {
	sums := map[string]float64{}
	var total float64
	for _, r := range records {
		if r.Network == "" {
			continue
		}
		if _, ok := sums[r.Network]; !ok {
			sums[r.Network] = 0
		}
		if r.Traffic.Valid {
			sums[r.Network] += r.Traffic.Float64
			total += r.Traffic.Float64
		}
	}
	out := make([]NetworkShare, 0, len(sums))
	for network, traffic := range sums {
		share := 0.0
		if total > 0 {
			share = traffic / total
		}
		out = append(out, NetworkShare{Network: network, Traffic: traffic, Share: share, Color: palette[network]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Network < out[j].Network })
	return out
}

// StationCorrespondences is one bar of the correspondence chart.
type StationCorrespondences struct {
	Station string `json:"station"`
	Network string `json:"network"`
	Count   int    `json:"correspondence_count"`
}

// TopCorrespondences returns the n records with the most correspondences.
// Ties keep file order.
func TopCorrespondences(records []ridership.Record, n int) []StationCorrespondences {
	if n <= 0 {
		return []StationCorrespondences{}
	}
	sorted := make([]ridership.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CorrespondenceCount > sorted[j].CorrespondenceCount
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]StationCorrespondences, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, StationCorrespondences{Station: r.Station, Network: r.Network, Count: r.CorrespondenceCount})
	}
	return out
}

// MapPoint is a station placed on the map.
type MapPoint struct {
	Station             string            `json:"station"`
	Network             string            `json:"network"`
	Lat                 float64           `json:"lat"`
	Lon                 float64           `json:"lon"`
	Traffic             dataset.NullFloat `json:"traffic"`
	CorrespondenceCount dataset.NullInt   `json:"correspondence_count"`
	Color               string            `json:"color,omitempty"`
}

// MapPoints builds the map layer from stations that have both coordinates.
func MapPoints(tbl *geocode.Table, palette map[string]string) []MapPoint {
	stations := tbl.Mappable()
	out := make([]MapPoint, 0, len(stations))
	for _, s := range stations {
		out = append(out, MapPoint{
			Station:             s.Station,
			Network:             s.Network,
			Lat:                 s.Lat.Float64,
			Lon:                 s.Lon.Float64,
			Traffic:             s.Traffic,
			CorrespondenceCount: s.CorrespondenceCount,
			Color:               palette[s.Network],
		})
	}
	return out
}
