package adapthttp

import (
	"net/http"

	"solerelief/internal/domain"
)

func (s *Server) handleExerciseList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ExerciseFilter{
		Category:   domain.Category(q.Get("category")),
		Difficulty: domain.Difficulty(q.Get("difficulty")),
		IsCore:     boolQuery(r, "isCore"),
		Query:      q.Get("q"),
	}
	items, err := s.exercises.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleExerciseGet(w http.ResponseWriter, r *http.Request) {
	ex, err := s.exercises.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, ex, "exercise")
}

func (s *Server) handleExerciseCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.NewExercise
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ex, err := s.exercises.Create(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handleExerciseUpdate(w http.ResponseWriter, r *http.Request) {
	var body domain.ExercisePatch
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ex, err := s.exercises.Update(r.Context(), r.PathValue("id"), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeFound(w, ex, "exercise")
}
