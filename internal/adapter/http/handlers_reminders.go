package adapthttp

import (
	"net/http"

	"solerelief/internal/domain"
)

func (s *Server) handleReminderList(w http.ResponseWriter, r *http.Request) {
	items, err := s.reminders.List(r.Context(), s.userID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleReminderCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.NewReminder
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.UserID == "" {
		body.UserID = s.defaultUserID
	}
	rem, err := s.reminders.Create(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rem)
}

func (s *Server) handleReminderUpdate(w http.ResponseWriter, r *http.Request) {
	var body domain.ReminderPatch
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rem, err := s.reminders.Update(r.Context(), r.PathValue("id"), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, rem, "reminder")
}

func (s *Server) handleReminderDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.reminders.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, errNotFoundFor("reminder"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
