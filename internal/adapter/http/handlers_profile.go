package adapthttp

import (
	"net/http"

	"solerelief/internal/domain"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, p, "profile")
}

func (s *Server) handleProfileCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.NewUserProfile
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.profiles.Create(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var body domain.UserProfilePatch
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.profiles.Update(r.Context(), r.PathValue("id"), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, p, "profile")
}
