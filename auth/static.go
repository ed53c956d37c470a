package auth

// Built-in demo account. This is a placeholder policy, not real security.
const (
	DefaultUsername = "admin"
	DefaultPassword = "1234"
)

// StaticAuthenticator implements Authenticator against a single fixed pair
type StaticAuthenticator struct {
	username string
	password string
}

// NewStaticAuthenticator creates an authenticator that accepts only the
// built-in demo account
func NewStaticAuthenticator() *StaticAuthenticator {
	return &StaticAuthenticator{
		username: DefaultUsername,
		password: DefaultPassword,
	}
}

// Check reports whether username and password both match exactly.
// Comparison is case-sensitive and nothing is trimmed.
func (s *StaticAuthenticator) Check(username, password string) bool {
	return username == s.username && password == s.password
}
