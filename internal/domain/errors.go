package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	// ErrUnauthenticated collapses every reason a profile cannot be shown:
	// missing credential, rejected credential, unreachable backend or a
	// malformed response. Callers recover from all of them the same way.
	ErrUnauthenticated = errors.New("unauthenticated or unreachable")

	// ErrInvalidCredentials indicates a sign-in attempt failed due to an
	// incorrect identifier or password combination.
	ErrInvalidCredentials = errors.New("invalid credentials provided")
)
