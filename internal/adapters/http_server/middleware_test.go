package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpserver "bookingmx/internal/adapters/http_server"
	"bookingmx/internal/adapters/observability"
)

func TestRateLimit_PerClient(t *testing.T) {
	reg := observability.InitRegistry()

	// rps=1 allows a burst of two, so the third request in a row must trip
	srv := httpserver.New(1)
	srv.MountHandlers(&httpserver.Handlers{})
	h := srv.Mux()

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = send("10.0.0.1:4000")
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}
	if got := last.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("Retry-After = %q, want \"1\"", got)
	}
	if ct := last.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type: %q", ct)
	}
	var p struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(last.Body).Decode(&p); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if p.Status != http.StatusTooManyRequests || !strings.Contains(p.Detail, "rate limit") {
		t.Fatalf("problem: %+v", p)
	}

	// exhausting one client's budget must not limit another
	if rr := send("10.0.0.2:4000"); rr.Code != http.StatusOK {
		t.Fatalf("fresh client status = %d, want 200", rr.Code)
	}

	// the rejection shows up on the counter
	mrr := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(mrr.Body)
	out := string(body)
	if !strings.Contains(out, "bookingmx_rate_limited_total") {
		t.Fatalf("expected rate_limited counter in scrape")
	}
	if strings.Contains(out, "bookingmx_rate_limited_total 0") {
		t.Fatalf("rate_limited counter never incremented")
	}
}
