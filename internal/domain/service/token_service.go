package service

// TokenService defines the interface for issuing and verifying bearer tokens.
// The signing secret is process-wide configuration, loaded once at startup;
// there is no rotation.
type TokenService interface {
	// Generate signs the subject identifier into a bearer token.
	Generate(subject string) (string, error)

	// Verify checks a token's signature (and expiry, when configured) and
	// returns the embedded subject identifier.
	Verify(token string) (string, error)
}
