package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestNewPrometheusController_DefaultPath(t *testing.T) {
	c := NewPrometheusController("")
	if c.Key() != "/debug/prometheus" {
		t.Fatalf("expected default path, got %q", c.Key())
	}
}

func TestPrometheusController_ServesInstrumentedCounters(t *testing.T) {
	instrumented := Instrument("settings_test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	instrumented(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	router := mux.NewRouter()
	NewPrometheusController("/metrics").Register(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from scrape endpoint, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `hsehub_api_requests_total{endpoint="settings_test",result="4xx"}`) {
		t.Fatalf("expected instrumented counter in scrape output")
	}
}
