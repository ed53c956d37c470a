package auth

// Credentials is the username/password pair captured from the login form at
// submit time. It is passed by value and never retained.
type Credentials struct {
	Username string
	Password string
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Success bool
	Message string
}
