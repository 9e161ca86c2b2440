package adapthttp

import "net/http"

func (s *Server) handleSummaryToday(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary.Today(r.Context(), s.userID(r), s.today())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleSummaryPain(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 14)
	points, err := s.summary.PainSeries(r.Context(), s.userID(r), days, s.now().UTC())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": len(points), "items": points})
}
