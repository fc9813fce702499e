package domain

// AuthProvider identifies how a user account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
// PasswordHash is never serialized; OAuth users may have an empty hash.
type User struct {
	UserID          string       `json:"userID"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"`
	ProfileImageURL *string      `json:"profileImageUrl,omitempty"`
	AuthProvider    AuthProvider `json:"-"`
	ProviderUserID  string       `json:"-"`
	AuditFields
}
