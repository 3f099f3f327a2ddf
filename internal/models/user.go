package models

// Role values for User.Role.
const (
	RoleMaster = "master"
	RoleAdmin  = "admin"
	RoleUser   = "user"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's email address (unique). Used for login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. Never exposed
	// through the API.
	PasswordHash string `json:"-"`

	// FirstName and LastName are profile fields.
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`

	// ProfileImage is an optional avatar URL.
	ProfileImage string `json:"profileImage"`

	// Description is optional free text about the user.
	Description string `json:"description"`

	// Role is one of master, admin or user. The first account ever created
	// is promoted to admin at creation time.
	Role string `json:"role"`

	// Favorites is the list of Client ids the user has marked as favorites.
	// Toggling removes an id that is present and appends one that is not.
	Favorites []string `json:"favorites"`

	// TeamID references the team the user belongs to, empty if none.
	// A user belongs to at most one team at a time.
	TeamID string `json:"teamId"`

	// Settings is the list of ClientSettings ids owned by this user.
	Settings []string `json:"settings"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}
