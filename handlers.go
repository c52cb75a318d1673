package trafficdash

import (
	"errors"
	"net/http"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/formatter"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/views"
)

func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views.Networks(tbl.Records))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, BuildSummary(tbl, r.URL.Query().Get("network")))
}

func (s *Server) handleTrafficShare(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views.TrafficShare(tbl.Records, s.cfg.Colors.Share))
}

func (s *Server) handleTopCorrespondences(w http.ResponseWriter, r *http.Request) {
	limit, err := parseTopLimit(r, s.cfg.Views.TopCorrespondences)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views.TopCorrespondences(tbl.Records, limit))
}

func (s *Server) handleArrondissements(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views.ArrondissementOptions(tbl.Records))
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	q, err := parseStationsQuery(r)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	records := SelectStations(tbl, q.network, q.arrondissement)
	s.writeJSON(w, http.StatusOK, StationsResponse{
		Network:        q.network,
		Arrondissement: q.arrondissement.String(),
		Count:          len(records),
		Stations:       records,
	})
}

func (s *Server) handleStationsCSV(w http.ResponseWriter, r *http.Request) {
	q, err := parseStationsQuery(r)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	tbl, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="stations.csv"`)
	if err := formatter.WriteStationsCSV(w, tbl, SelectStations(tbl, q.network, q.arrondissement)); err != nil {
		s.log.Errorw("csv export failed", "error", err)
	}
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	geo, err := s.tables.LoadGeocode()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views.MapPoints(geo, s.cfg.Colors.Map))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	buf, err := s.rb.BuildJSON(v)
	if err != nil {
		s.log.Errorw("failed to encode response", "error", err)
		status = http.StatusInternalServerError
		buf = []byte(`{"error":"internal error","message":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func (s *Server) writeLoadError(w http.ResponseWriter, err error) {
	status, body := LoadErrorResponse(err)
	s.log.Errorw("table load failed", "error", err)
	s.writeJSON(w, status, body)
}

func (s *Server) writeQueryError(w http.ResponseWriter, err error) {
	var qe *QueryError
	if errors.As(err, &qe) {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid query", Message: qe.Msg})
		return
	}
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid query", Message: err.Error()})
}
