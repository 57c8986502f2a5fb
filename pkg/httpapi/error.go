package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

// ErrorEnvelope is the JSON body every API error carries. Code is stable and
// machine-readable; Meta holds optional field-level context.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// WriteJSON writes payload with the given status. A nil payload writes the
// status line only, which is how 204 responses are produced.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// WriteError writes an ErrorEnvelope with the given status.
func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Message: message,
		Code:    code,
		Meta:    meta,
	})
}

// WriteBaseError maps a coded service error onto the envelope. Details, when
// set, names the offending field.
func WriteBaseError(w http.ResponseWriter, status int, err *serrors.BaseError) error {
	var meta map[string]string
	if err.Details != "" {
		meta = map[string]string{"field": err.Details}
	}
	return WriteError(w, status, err.Code, err.Message, meta)
}
