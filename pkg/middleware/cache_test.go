package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCachePassesThroughWithoutRedis(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":true}`))
	})

	wrapped := Cache(nil, time.Minute, zap.NewNop())(handler)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vehicles", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Errorf("X-Cache = %q, want unset without a cache", rec.Header().Get("X-Cache"))
	}
	if rec.Body.String() != `{"status":true}` {
		t.Errorf("body = %q, altered by pass-through", rec.Body.String())
	}
}

func TestCacheInvalidatePassesThroughWithoutRedis(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	wrapped := CacheInvalidate(nil, zap.NewNop())(handler)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/vehicles", nil))

	if !called {
		t.Fatal("wrapped handler was not called")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}
