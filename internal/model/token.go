package model

// SessionClaims is the identity embedded in a session credential. The
// claims are trusted only after signature verification succeeds.
type SessionClaims struct {
	Email string
	Role  string
}

// TokenManager signs and verifies session credentials.
type TokenManager interface {
	GenerateSessionToken(claims SessionClaims) (string, error)
	ParseSessionToken(token string) (SessionClaims, error)
}
