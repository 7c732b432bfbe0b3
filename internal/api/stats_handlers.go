package api

import "net/http"

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.StatsService.GetStatistics(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}
