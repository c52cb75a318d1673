package trafficdash

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/views"
)

func TestBuildSummary_NoNetworkLabels(t *testing.T) {
	schema := ridership.Schema{Network: "reseau", Station: "station", Traffic: "trafic"}
	tbl, err := ridership.Parse(strings.NewReader("Réseau;Station;Trafic\n;A;10\n;B;20\n"), schema)
	require.NoError(t, err)

	got := BuildSummary(tbl, "")
	assert.Equal(t, "", got.Network)
	assert.Equal(t, views.Summary{}, got.Figures)
	assert.Equal(t, "no data", got.Display.BusiestStation)
	assert.Equal(t, "0", got.Display.TotalTraffic)
}

func TestLoadErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		label  string
	}{
		{"file access", fmt.Errorf("%w: data_ratp.csv", dataset.ErrFileAccess), http.StatusServiceUnavailable, "file not found"},
		{"schema", fmt.Errorf("data_ratp.csv: %w", dataset.ErrSchema), http.StatusServiceUnavailable, "unexpected file format"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := LoadErrorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.label, body.Error)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}
}
