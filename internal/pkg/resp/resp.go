/*
Package resp provides helper functions for constructing and sending standardized HTTP JSON responses.

Every API response uses the same envelope: {"success": true, "data": ...} on success and
{"success": false, "error": "..."} on failure. A failure never carries partial data.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"rbxpresence/internal/pkg/errs"
	"rbxpresence/internal/pkg/logx"
)

// Envelope is the JSON structure returned by the API routes.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondJSON sets the JSON headers and writes payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Ctx(r.Context()).Error().
			Err(err).
			Int("http_status", httpStatus).
			Msg("Error encoding JSON response")

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	_, _ = w.Write(response)
}

// RespondSuccess sends {"success": true, "data": data} with HTTP 200.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, Envelope{Success: true, Data: data})
}

// RespondError sends {"success": false, "error": message} with the error's HTTP status.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, Envelope{Success: false, Error: customErr.Message})
}
