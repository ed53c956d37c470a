// Package auth decides whether a submitted credential pair is accepted.
package auth

// Messages shown to the user after a login attempt
const (
	SuccessMessage = "✅ Login Successful!"
	FailureMessage = "❌ Invalid Username or Password."
)

// Authenticator interface for credential verification implementations
type Authenticator interface {
	Check(username, password string) bool
}

// AuthService handles authentication business logic
type AuthService struct {
	authenticator Authenticator
}

// NewAuthService creates a new authentication service
func NewAuthService(authenticator Authenticator) *AuthService {
	return &AuthService{
		authenticator: authenticator,
	}
}

// AttemptLogin checks the credentials and maps the outcome to the message the
// login screen acknowledges. Empty fields are not rejected up front; they
// simply fail the check like any other mismatch.
func (s *AuthService) AttemptLogin(creds Credentials) LoginResult {
	if !s.authenticator.Check(creds.Username, creds.Password) {
		return LoginResult{
			Success: false,
			Message: FailureMessage,
		}
	}

	return LoginResult{
		Success: true,
		Message: SuccessMessage,
	}
}
