// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/boardgate/boardgate/db"
	"github.com/boardgate/boardgate/roster"
	"github.com/boardgate/boardgate/store"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "boardgate_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a store backed by a fresh test database.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// SeedVotes casts votes by the first n roster members on phaseID.
// n equal to the roster size completes the phase.
func SeedVotes(t *testing.T, st *store.Store, phaseID, n int) {
	t.Helper()

	members := roster.Members()
	if n > len(members) {
		t.Fatalf("SeedVotes: n=%d exceeds roster size %d", n, len(members))
	}
	for i := 0; i < n; i++ {
		if _, _, err := st.CastVote(phaseID, members[i], ""); err != nil {
			t.Fatalf("Failed to seed vote %d on phase %d: %v", i, phaseID, err)
		}
	}
}

// CompletePhases drives phases 1..through to full quorum in order.
func CompletePhases(t *testing.T, st *store.Store, through int) {
	t.Helper()
	for id := 1; id <= through; id++ {
		SeedVotes(t, st, id, roster.Size())
	}
}

// LoginMember creates a session for the roster member at index i and
// returns the token.
func LoginMember(t *testing.T, st *store.Store, i int) string {
	t.Helper()

	members := roster.Members()
	if i >= len(members) {
		t.Fatalf("LoginMember: index %d exceeds roster size %d", i, len(members))
	}
	sess, err := st.Login(members[i])
	if err != nil {
		t.Fatalf("Failed to log in member %d: %v", i, err)
	}
	return sess.Token
}

// LoginAdmin creates a session for the roster administrator and
// returns the token.
func LoginAdmin(t *testing.T, st *store.Store) string {
	t.Helper()

	for _, m := range roster.Members() {
		if m.IsAdmin {
			sess, err := st.Login(m)
			if err != nil {
				t.Fatalf("Failed to log in admin: %v", err)
			}
			return sess.Token
		}
	}
	t.Fatal("roster has no administrator")
	return ""
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
