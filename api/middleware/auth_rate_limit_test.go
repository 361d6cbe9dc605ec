package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func limitedRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.RemoteAddr = "1.2.3.4:5678"
	return req
}

func TestAuthRateLimitPassesBodyThrough(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 2, 2)
	var seenBody string
	handler := AuthRateLimit(policy, newCountingStore(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		seenBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, limitedRequest(`{"email":"tester@example.com","password":"secret"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// the limiter consumed the body to find the email; the handler must
	// still see the full payload
	if !strings.Contains(seenBody, `"email":"tester@example.com"`) {
		t.Fatalf("handler saw truncated body: %s", seenBody)
	}
}

func TestAuthRateLimitBlocksByEmail(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 2)
	handler := AuthRateLimit(policy, newCountingStore(), nil)(http.HandlerFunc(okHandler))

	body := `{"email":"blocked@example.com","password":"secret"}`
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limitedRequest(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected success before limit, got %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, limitedRequest(body))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeRateLimit) {
		t.Fatalf("unexpected code: %s", payload.Error.Code)
	}
}

func TestAuthRateLimitBlocksByIP(t *testing.T) {
	policy := NewAuthRateLimitPolicy("signup", time.Minute, 1, 0)
	handler := AuthRateLimit(policy, newCountingStore(), nil)(http.HandlerFunc(okHandler))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, limitedRequest(`{"email":"foo@example.com"}`))
	if first.Code != http.StatusOK {
		t.Fatalf("expected success, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, limitedRequest(`{"email":"bar@example.com"}`))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for same ip, got %d", second.Code)
	}
}

func TestAuthRateLimitDisabledPolicyIsNoop(t *testing.T) {
	handler := AuthRateLimit(AuthRateLimitPolicy{}, newCountingStore(), nil)(http.HandlerFunc(okHandler))
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limitedRequest(`{"email":"any@example.com"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("disabled policy should never block, got %d", rec.Code)
		}
	}
}

type countingStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newCountingStore() *countingStore {
	return &countingStore{counts: map[string]int64{}}
}

func (s *countingStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}
