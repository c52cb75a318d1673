package trafficdash

import (
	"errors"
	"net/http"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/utils"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/views"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SummaryDisplay holds the key figures formatted for display.
type SummaryDisplay struct {
	TotalTraffic   string `json:"total_traffic"`
	StationCount   string `json:"station_count"`
	BusiestStation string `json:"busiest_station"`
	MeanTraffic    string `json:"mean_traffic"`
}

// SummaryResponse is the key figures panel of one network.
type SummaryResponse struct {
	Network string         `json:"network"`
	Figures views.Summary  `json:"figures"`
	Display SummaryDisplay `json:"display"`
}

// BuildSummary computes the key figures of network over the traffic table.
// An empty network selects the first network in label order; a table
// without any network label yields the empty figures.
func BuildSummary(tbl *ridership.Table, network string) SummaryResponse {
	records := []ridership.Record{}
	if network == "" {
		if networks := views.Networks(tbl.Records); len(networks) > 0 {
			network = networks[0]
		}
	}
	if network != "" {
		records = views.ByNetwork(tbl.Records, network)
	}
	s := views.Summarize(records)
	busiest := utils.NoDataLabel
	if s.HasBusiest {
		busiest = utils.TitleStation(s.BusiestStation)
	}
	return SummaryResponse{
		Network: network,
		Figures: s,
		Display: SummaryDisplay{
			TotalTraffic:   utils.FormatTraffic(s.TotalTraffic),
			StationCount:   utils.FormatCount(int64(s.StationCount)),
			BusiestStation: busiest,
			MeanTraffic:    utils.FormatCount(s.MeanTraffic),
		},
	}
}

// StationsResponse is the arrondissement drill-down table.
type StationsResponse struct {
	Network        string             `json:"network"`
	Arrondissement string             `json:"arrondissement"`
	Count          int                `json:"count"`
	Stations       []ridership.Record `json:"stations"`
}

// SelectStations applies the drill-down filters: arrondissement first, then
// network. An empty network keeps every network.
func SelectStations(tbl *ridership.Table, network string, f views.ArrondissementFilter) []ridership.Record {
	records := views.ByArrondissement(tbl.Records, f)
	if network != "" {
		records = views.ByNetwork(records, network)
	}
	return records
}

type healthResponse struct {
	Status        string `json:"status"`
	RidershipRows int    `json:"ridership_rows"`
	GeocodeRows   int    `json:"geocode_rows"`
}

// LoadErrorResponse classifies a table load failure as an HTTP status and
// error payload.
func LoadErrorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, dataset.ErrFileAccess):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "file not found", Message: err.Error()}
	case errors.Is(err, dataset.ErrSchema):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "unexpected file format", Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal error", Message: err.Error()}
	}
}
