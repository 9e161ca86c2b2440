package adapthttp

import (
	"net/http"

	"solerelief/internal/domain"
)

func (s *Server) handleProgressList(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 0)
	items, err := s.progress.ListRecent(r.Context(), s.userID(r), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleProgressByDate(w http.ResponseWriter, r *http.Request) {
	entry, err := s.progress.GetForDay(r.Context(), s.userID(r), r.PathValue("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, entry, "progress entry")
}

func (s *Server) handleProgressCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.NewProgressEntry
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.UserID == "" {
		body.UserID = s.defaultUserID
	}
	entry, err := s.progress.Record(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleProgressUpdate(w http.ResponseWriter, r *http.Request) {
	var body domain.ProgressEntryPatch
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.progress.Update(r.Context(), r.PathValue("id"), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, entry, "progress entry")
}
