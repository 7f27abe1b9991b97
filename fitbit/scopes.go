package fitbit

// Scope represents an OAuth2 scope required to access specific Fitbit API endpoints.
type Scope string

const (
	// ScopeActivity allows reading and logging the user's activity data.
	ScopeActivity Scope = "activity"

	// ScopeHeartRate allows reading the user's heart rate data.
	ScopeHeartRate Scope = "heartrate"

	// ScopeNutrition allows reading and logging food and water data.
	ScopeNutrition Scope = "nutrition"

	// ScopeProfile allows reading the user's profile.
	ScopeProfile Scope = "profile"

	// ScopeSettings allows reading and changing device settings.
	ScopeSettings Scope = "settings"

	// ScopeSleep allows reading and logging the user's sleep data.
	ScopeSleep Scope = "sleep"

	// ScopeSocial allows reading the user's friends and leaderboard.
	ScopeSocial Scope = "social"

	// ScopeWeight allows reading and logging body and weight data.
	ScopeWeight Scope = "weight"
)
