package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(5, 300*time.Second)
	current := time.Now()
	rl.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("sixth request within window allowed, want rejected")
	}

	// A different client has an independent budget.
	if !rl.Allow("5.6.7.8") {
		t.Fatal("unrelated client rejected")
	}

	current = current.Add(301 * time.Second)
	if !rl.Allow("1.2.3.4") {
		t.Fatal("request after window elapsed rejected, want allowed")
	}
}

func TestRateLimiterRollingPurge(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Second)
	current := time.Now()
	rl.now = func() time.Time { return current }

	if !rl.Allow("k") {
		t.Fatal("first request rejected")
	}
	current = current.Add(60 * time.Second)
	if !rl.Allow("k") {
		t.Fatal("second request rejected")
	}
	if rl.Allow("k") {
		t.Fatal("third request allowed at limit")
	}

	// First timestamp ages out, freeing one slot.
	current = current.Add(50 * time.Second)
	if !rl.Allow("k") {
		t.Fatal("request after oldest timestamp expired rejected")
	}
}

func TestLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/leads", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("429 Content-Type = %q, want application/json", ct)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr only", "192.0.2.10:1234", nil, "192.0.2.10"},
		{"x-forwarded-for single", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"x-forwarded-for chain takes first", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"x-real-ip fallback", "10.0.0.1:80", map[string]string{"X-Real-IP": "198.51.100.9"}, "198.51.100.9"},
		{"unparseable remote addr passes through", "localhost", nil, "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
