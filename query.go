package trafficdash

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/views"
)

// maxTopLimit caps the top-correspondences chart length.
const maxTopLimit = 100

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func parseNonNegativeInt(s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return -1, &QueryError{Msg: "Numeric parameter must be a non-negative integer."}
	}
	return v, nil
}

// stationsQuery is the drill-down table selection.
type stationsQuery struct {
	network        string
	arrondissement views.ArrondissementFilter
}

func parseStationsQuery(r *http.Request) (stationsQuery, error) {
	q := r.URL.Query()
	f, err := views.ParseArrondissementFilter(q.Get("arrondissement"))
	if err != nil {
		return stationsQuery{}, &QueryError{Msg: "Arrondissement must be 'all', 'unspecified' or a non-negative integer."}
	}
	return stationsQuery{network: strings.TrimSpace(q.Get("network")), arrondissement: f}, nil
}

// parseTopLimit reads the limit parameter, falling back to def.
func parseTopLimit(r *http.Request, def int) (int, error) {
	n, err := parseNonNegativeInt(r.URL.Query().Get("limit"))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return def, nil
	}
	if n > maxTopLimit {
		return 0, &QueryError{Msg: "Limit must not exceed " + strconv.Itoa(maxTopLimit) + "."}
	}
	return n, nil
}
