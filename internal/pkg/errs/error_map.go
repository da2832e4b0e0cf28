/*
Package errs provides custom error types and application-level error code constants.

This file maps error codes to their client message and HTTP status.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// A zero Status means the error is reported with HTTP 200 and success:false.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Invalid JSON body", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data", Status: http.StatusBadRequest},
	ErrInvalidUserID:        {Code: ErrInvalidUserID, Message: "Invalid userId", Status: http.StatusBadRequest},
	ErrInvalidUniverseID:    {Code: ErrInvalidUniverseID, Message: "Invalid universeId", Status: http.StatusBadRequest},

	// 2xxx: Lookup Errors
	ErrUserNotFound:     {Code: ErrUserNotFound, Message: "User not found"},
	ErrUniverseNotFound: {Code: ErrUniverseNotFound, Message: "Universe not found"},

	// 5xxx: Internal System Errors
	ErrUnknown:  {Code: ErrUnknown, Message: "Internal server error", Status: http.StatusInternalServerError},
	ErrUpstream: {Code: ErrUpstream, Message: "%s", Status: http.StatusInternalServerError},
}
