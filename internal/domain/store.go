package domain

// DefaultUserID identifies the single built-in user and its seeded profile.
const DefaultUserID = "default-user"

// Store is the full set of repository ports a storage adapter provides.
type Store interface {
	ExerciseRepository
	ReminderRepository
	ProgressRepository
	CompletionRepository
	ProfileRepository
}
