package adapthttp

import (
	"log/slog"
	"net/http"
	"time"

	"solerelief/internal/app"
)

// Services groups the application services the HTTP adapter drives.
type Services struct {
	Exercises   *app.ExerciseService
	Reminders   *app.ReminderService
	Progress    *app.ProgressService
	Completions *app.CompletionService
	Profiles    *app.ProfileService
	Summary     *app.SummaryService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	exercises   *app.ExerciseService
	reminders   *app.ReminderService
	progress    *app.ProgressService
	completions *app.CompletionService
	profiles    *app.ProfileService
	summary     *app.SummaryService

	webDir        string
	defaultUserID string
	logger        *slog.Logger
	now           func() time.Time
}

// New creates a Server wired to the given application services. Requests
// without a userId act on defaultUserID. A nil logger means slog.Default().
func New(svc Services, webDir, defaultUserID string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		exercises:     svc.Exercises,
		reminders:     svc.Reminders,
		progress:      svc.Progress,
		completions:   svc.Completions,
		profiles:      svc.Profiles,
		summary:       svc.Summary,
		webDir:        webDir,
		defaultUserID: defaultUserID,
		logger:        logger,
		now:           time.Now,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("GET /exercises", s.handleExerciseList)
	api.HandleFunc("POST /exercises", s.handleExerciseCreate)
	api.HandleFunc("GET /exercises/{id}", s.handleExerciseGet)
	api.HandleFunc("PUT /exercises/{id}", s.handleExerciseUpdate)

	api.HandleFunc("GET /reminders", s.handleReminderList)
	api.HandleFunc("POST /reminders", s.handleReminderCreate)
	api.HandleFunc("PUT /reminders/{id}", s.handleReminderUpdate)
	api.HandleFunc("DELETE /reminders/{id}", s.handleReminderDelete)

	api.HandleFunc("GET /progress", s.handleProgressList)
	api.HandleFunc("POST /progress", s.handleProgressCreate)
	api.HandleFunc("GET /progress/{date}", s.handleProgressByDate)
	api.HandleFunc("PUT /progress/{id}", s.handleProgressUpdate)

	api.HandleFunc("GET /exercise-completions", s.handleCompletionList)
	api.HandleFunc("POST /exercise-completions", s.handleCompletionCreate)

	api.HandleFunc("POST /profile", s.handleProfileCreate)
	api.HandleFunc("GET /profile/{id}", s.handleProfileGet)
	api.HandleFunc("PUT /profile/{id}", s.handleProfileUpdate)

	api.HandleFunc("GET /summary", s.handleSummaryToday)
	api.HandleFunc("GET /summary/pain", s.handleSummaryPain)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.withRequestID(s.withRequestLog(withNoCache(root)))
}

// userID returns the userId query parameter or the configured default.
func (s *Server) userID(r *http.Request) string {
	if v := r.URL.Query().Get("userId"); v != "" {
		return v
	}
	return s.defaultUserID
}

// today is the current calendar day in UTC, the same day boundary the
// stores use for completions.
func (s *Server) today() string {
	return dayString(s.now())
}
