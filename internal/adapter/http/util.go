package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"solerelief/internal/app"
	"solerelief/internal/domain"
	"solerelief/internal/logging"
)

var errNotFound = errors.New("not found")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeServiceError maps an application error to a status code. Validation
// failures are the caller's fault; anything else is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logging.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, errors.New("internal error"))
}

func errNotFoundFor(what string) error {
	return fmt.Errorf("%s %w", what, errNotFound)
}

// writeFound writes v, or a 404 when v is nil.
func writeFound[T any](w http.ResponseWriter, v *T, what string) {
	if v == nil {
		writeError(w, http.StatusNotFound, errNotFoundFor(what))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// boolQuery returns nil unless key is exactly "true" or "false".
func boolQuery(r *http.Request, key string) *bool {
	switch v := r.URL.Query().Get(key); v {
	case "true", "false":
		b := v == "true"
		return &b
	}
	return nil
}

func dayString(t time.Time) string {
	return t.UTC().Format(domain.DayLayout)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func spaFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(indexPath); err != nil {
			http.NotFound(w, r)
			return
		}

		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		staticPath := path.Join(dir, reqPath)
		if _, err := os.Stat(staticPath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
