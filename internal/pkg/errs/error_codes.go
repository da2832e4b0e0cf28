/*
Package errs provides custom error types and application-level error code constants.

These error codes identify request, lookup and upstream failures both inside the server
and in the responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrInvalidUserID indicates that the user id is not a non-negative integer.
	ErrInvalidUserID = 1101

	// ErrInvalidUniverseID indicates that the universe id is not a positive integer.
	ErrInvalidUniverseID = 1102
)

// 2xxx: Lookup Errors
const (
	// ErrUserNotFound indicates that the presence service returned no entry for the user.
	ErrUserNotFound = 2101

	// ErrUniverseNotFound indicates that the games service returned no entry for the universe.
	ErrUniverseNotFound = 2102
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrUpstream indicates a network failure or non-success status from an upstream service.
	// The message carries the upstream error text verbatim.
	ErrUpstream = 5001
)
