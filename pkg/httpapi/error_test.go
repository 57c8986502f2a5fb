package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

func TestWriteJSON_NilPayloadWritesStatusOnly(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteJSON(rec, http.StatusNoContent, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestWriteBaseError_DetailsBecomeFieldMeta(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteBaseError(rec, http.StatusBadRequest, serrors.NewValidationError("title"))
	if err != nil {
		t.Fatalf("WriteBaseError: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Code != "VALIDATION_REQUIRED" {
		t.Fatalf("expected VALIDATION_REQUIRED, got %q", envelope.Code)
	}
	if envelope.Meta["field"] != "title" {
		t.Fatalf("expected field meta, got %v", envelope.Meta)
	}
}

func TestWriteBaseError_NoDetailsOmitsMeta(t *testing.T) {
	rec := httptest.NewRecorder()

	base := serrors.NewError("NO_TOKEN", "no api token generated", "")
	if err := WriteBaseError(rec, http.StatusNotFound, base); err != nil {
		t.Fatalf("WriteBaseError: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if _, ok := raw["meta"]; ok {
		t.Fatalf("expected meta omitted, body %s", rec.Body.String())
	}
}
