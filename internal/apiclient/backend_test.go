package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BerryBytes/hrctl/models"
	"github.com/go-chi/chi/v5"
)

// fakeBackend is a minimal HR API: one protected resource plus the refresh
// endpoint. Only the most recently issued access token is accepted.
type fakeBackend struct {
	t *testing.T

	mu           sync.Mutex
	access       string
	refresh      string
	issued       int
	seenTokens   []string
	seenRequests map[string][]string

	refreshCalls  int32
	refreshFails  bool
	refreshDelay  time.Duration
	omitRefresh   bool
	unauthBarrier *sync.WaitGroup
}

func newFakeBackend(t *testing.T, access, refresh string) (*fakeBackend, *httptest.Server) {
	b := &fakeBackend{
		t:            t,
		access:       access,
		refresh:      refresh,
		seenRequests: map[string][]string{},
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/token/refresh/", b.handleRefresh)
		r.Group(func(r chi.Router) {
			r.Use(b.requireToken)
			r.Get("/employees/", b.handleEmployees)
			r.Post("/leave/requests/", b.handleCreateLeave)
		})
		r.Get("/boom/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database unavailable"})
		})
		r.Get("/always-401/", func(w http.ResponseWriter, r *http.Request) {
			b.record(r)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seenTokens = append(b.seenTokens, r.Header.Get("Authorization"))
	id := r.Header.Get(RequestIDHeader)
	b.seenRequests[id] = append(b.seenRequests[id], r.Header.Get("Authorization"))
}

func (b *fakeBackend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.record(r)

		b.mu.Lock()
		valid := r.Header.Get("Authorization") == "Bearer "+b.access
		barrier := b.unauthBarrier
		b.mu.Unlock()

		if !valid {
			if barrier != nil {
				barrier.Done()
				barrier.Wait()
			}
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"detail": "Given token not valid for any token type",
				"code":   "token_not_valid",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) handleEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]any{
		{"id": 1, "employee_id": "EMP001", "first_name": "Ada", "search": r.URL.Query().Get("search")},
	})
}

func (b *fakeBackend) handleCreateLeave(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "malformed body"})
		return
	}
	body["id"] = 7
	writeJSON(w, http.StatusCreated, body)
}

func (b *fakeBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&b.refreshCalls, 1)
	if b.refreshDelay > 0 {
		time.Sleep(b.refreshDelay)
	}

	if r.Header.Get("Authorization") != "" {
		b.t.Errorf("refresh request carried an Authorization header")
	}

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.refreshFails || req.Refresh != b.refresh {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"detail": "Token is invalid or expired",
			"code":   "token_not_valid",
		})
		return
	}

	b.issued++
	b.access = fmt.Sprintf("access-%d", b.issued)
	resp := models.RefreshResponse{Access: b.access}
	if !b.omitRefresh {
		b.refresh = fmt.Sprintf("refresh-%d", b.issued)
		resp.Refresh = b.refresh
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *fakeBackend) refreshCount() int32 {
	return atomic.LoadInt32(&b.refreshCalls)
}

func (b *fakeBackend) tokens() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.seenTokens...)
}
