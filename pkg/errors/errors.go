// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	// ErrValidation - user input fails a precondition (empty title/description,
	// out-of-range coordinates). Terminal for the triggering operation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound - triage requested for an unknown report id. Indicates a
	// stale reference held by the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized - no valid session where one is required.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden - triage attempted without the council capability. No
	// partial state change occurs.
	ErrForbidden = errors.New("forbidden")

	// ErrFeedUnavailable - telemetry fetch or parse failure. Absorbed inside
	// the sensor feed adapter; callers see an empty reading set instead.
	ErrFeedUnavailable = errors.New("sensor feed unavailable")

	// ErrIdentityProvider - sign-in/out failure at the external provider.
	// Surfaced with the provider's error code; the caller decides on retry.
	ErrIdentityProvider = errors.New("identity provider error")

	// ErrLocationUnavailable - position acquisition failed or timed out.
	// Never blocks report submission; location stays optional.
	ErrLocationUnavailable = errors.New("location unavailable")
)
