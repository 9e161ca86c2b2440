package adapthttp

import (
	"net/http"

	"solerelief/internal/domain"
)

func (s *Server) handleCompletionList(w http.ResponseWriter, r *http.Request) {
	items, err := s.completions.List(r.Context(), s.userID(r), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCompletionCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.NewExerciseCompletion
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.UserID == "" {
		body.UserID = s.defaultUserID
	}
	c, err := s.completions.Record(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
