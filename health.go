package trafficdash

import (
	"net/http"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	rt, err := s.tables.LoadRidership()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	geo, err := s.tables.LoadGeocode()
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		RidershipRows: rt.Len(),
		GeocodeRows:   geo.Len(),
	})
}
