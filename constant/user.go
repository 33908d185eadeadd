package constant

type contextKey string

// UserIDKey carries the authenticated user ID on the request context.
const UserIDKey contextKey = "userID"

// Gender values accepted on a profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Client-side redirect targets returned by auth and profile operations.
const (
	RedirectProfile   = "/profile"
	RedirectDashboard = "/dashboard"
)
