// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vortax/internal/config"
	"github.com/tomtom215/vortax/internal/database"
	"github.com/tomtom215/vortax/internal/recommend"
	"github.com/tomtom215/vortax/internal/tmdb"
)

// testDBSemaphore serializes DuckDB usage across tests in this package.
var testDBSemaphore = make(chan struct{}, 1)

type stubDiscovery struct {
	mu      sync.Mutex
	results []tmdb.Result
	err     error
	calls   int
	params  tmdb.DiscoverParams
}

func (s *stubDiscovery) Discover(_ context.Context, params tmdb.DiscoverParams) ([]tmdb.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

type testEnv struct {
	db        *database.DB
	handler   *Handler
	discovery *stubDiscovery
	server    http.Handler
}

func testConfig(env string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: env},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

// newTestEnv builds the full router over an in-memory, seeded DuckDB and a
// stubbed TMDB source.
func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	if _, err := db.SeedCatalog(context.Background()); err != nil {
		t.Fatalf("SeedCatalog() error = %v", err)
	}

	discovery := &stubDiscovery{}
	resolver, err := recommend.NewResolver(recommend.DefaultConfig(), db, discovery)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	personal := recommend.NewPersonalBuilder(db, recommend.DefaultConfig().Personal)

	if cfg == nil {
		cfg = testConfig("production")
	}
	handler := NewHandler(db, resolver, personal, cfg)
	router := NewRouter(handler, ChiMiddlewareConfigFrom(cfg.Security))

	return &testEnv{
		db:        db,
		handler:   handler,
		discovery: discovery,
		server:    router.SetupChi(),
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

// envelope is APIResponse with data left raw for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", rec.Body.String(), err)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("invalid data %s: %v", env.Data, err)
		}
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Success || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		t.Errorf("error envelope carries data %s", env.Data)
	}
	return env
}
