// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/boardgate/boardgate/auth"
	"github.com/boardgate/boardgate/db"
	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/notify"
	"github.com/boardgate/boardgate/phases"
)

// ErrPhaseLocked is returned when a vote targets any phase other than
// the currently active one, including phases already completed.
var ErrPhaseLocked = errors.New("phase is not open for voting")

// ErrUnknownPhase mirrors the plan's sentinel for ids outside 1..4.
var ErrUnknownPhase = phases.ErrUnknownPhase

// Store owns the voting state, the session, and the notification feed.
// One mutex guards every intent so mutations apply atomically; derived
// values (active phase, progress, draft counts) are recomputed from the
// vote sequences on every read and never cached.
type Store struct {
	mu      sync.Mutex
	conn    *sql.DB
	votes   models.VotingState
	feed    *notify.Feed
	session *models.Session
}

// New restores persisted state from conn and returns a ready store.
// A malformed or legacy votes entry is discarded for an empty state;
// restore never fails the process on bad persisted input.
func New(conn *sql.DB) *Store {
	s := &Store{
		conn:  conn,
		votes: emptyState(),
		feed:  notify.NewFeed(notify.DefaultCap),
	}
	s.restoreVotes()
	s.restoreSession()
	return s
}

func (s *Store) restoreVotes() {
	raw, ok, err := db.Get(s.conn, db.KeyVotes)
	if err != nil {
		slog.Error("failed to read votes entry", "error", err)
		return
	}
	if !ok {
		return
	}
	votes, err := decodeSnapshot(raw)
	if err != nil {
		slog.Warn("discarding persisted votes entry", "error", err)
		return
	}
	s.votes = votes
}

func (s *Store) restoreSession() {
	raw, ok, err := db.Get(s.conn, db.KeySession)
	if err != nil {
		slog.Error("failed to read session entry", "error", err)
		return
	}
	if !ok {
		return
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || sess.Token == "" {
		slog.Warn("discarding persisted session entry", "error", err)
		return
	}
	s.session = &sess
}

// persistVotes writes the votes entry. Best-effort: failures are logged
// and the in-memory state remains authoritative for the session.
func (s *Store) persistVotes() {
	raw, err := encodeSnapshot(s.votes)
	if err != nil {
		slog.Error("failed to encode votes entry", "error", err)
		return
	}
	if err := db.Put(s.conn, db.KeyVotes, raw); err != nil {
		slog.Error("failed to persist votes entry", "error", err)
	}
}

func (s *Store) persistSession() {
	if s.session == nil {
		if err := db.Delete(s.conn, db.KeySession); err != nil {
			slog.Error("failed to delete session entry", "error", err)
		}
		return
	}
	raw, err := json.Marshal(s.session)
	if err != nil {
		slog.Error("failed to encode session entry", "error", err)
		return
	}
	if err := db.Put(s.conn, db.KeySession, string(raw)); err != nil {
		slog.Error("failed to persist session entry", "error", err)
	}
}

// CastVote records an approval vote by m on phaseID. Only the currently
// active phase accepts votes. A repeat cast is idempotent: if the
// member's existing record has no comment and one is supplied now, the
// comment is set exactly once; otherwise nothing changes. The bool
// reports whether a new record was created.
func (s *Store) CastVote(phaseID int, m models.Member, comment string) ([]models.VoteRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := phases.ByID(phaseID); err != nil {
		return nil, false, err
	}
	if active := s.activePhase(); phaseID != active {
		return nil, false, fmt.Errorf("%w: phase %d is %s", ErrPhaseLocked, phaseID, s.phaseStatus(phaseID))
	}

	records := s.votes[phaseID]
	for i := range records {
		if records[i].MemberID == m.ID {
			// First non-empty comment wins and is never overwritten.
			if records[i].Comment == "" && comment != "" {
				records[i].Comment = comment
				s.persistVotes()
			}
			return copyRecords(records), false, nil
		}
	}

	s.votes[phaseID] = append(records, models.VoteRecord{
		MemberID:   m.ID,
		MemberName: m.Name,
		Comment:    comment,
		CastAt:     time.Now(),
	})
	s.persistVotes()
	s.feed.Push(fmt.Sprintf("%s approved phase %d", m.Name, phaseID))
	return copyRecords(s.votes[phaseID]), true, nil
}

// AddComment amends the comment on an existing vote, only if the record
// has none yet. Returns whether anything changed.
func (s *Store) AddComment(phaseID int, memberID, comment string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := phases.ByID(phaseID); err != nil {
		return false, err
	}
	if comment == "" {
		return false, nil
	}
	records := s.votes[phaseID]
	for i := range records {
		if records[i].MemberID == memberID {
			if records[i].Comment != "" {
				return false, nil
			}
			records[i].Comment = comment
			s.persistVotes()
			return true, nil
		}
	}
	return false, nil
}

// RemoveVote deletes memberID's record from phaseID if present,
// preserving the order of the remaining votes. The store does not gate
// this on the admin flag; access control belongs to the caller.
func (s *Store) RemoveVote(phaseID int, memberID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.votes[phaseID]
	for i := range records {
		if records[i].MemberID == memberID {
			s.votes[phaseID] = append(records[:i], records[i+1:]...)
			s.persistVotes()
			return true
		}
	}
	return false
}

// ResetPhase discards every vote and comment in phaseID. Irreversible.
// Because the active phase is derived from counts, resetting a
// completed phase re-locks every phase after it.
func (s *Store) ResetPhase(phaseID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := phases.ByID(phaseID); err != nil {
		return err
	}
	s.votes[phaseID] = nil
	s.persistVotes()
	return nil
}

// Votes returns a copy of the vote sequence for phaseID.
func (s *Store) Votes(phaseID int) []models.VoteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecords(s.votes[phaseID])
}

// Notifications returns the retained feed entries, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.Recent()
}

// Login issues a session for m and persists it so a reload stays
// logged in. Any previous session is replaced.
func (s *Store) Login(m models.Member) (models.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &models.Session{
		Token:     token,
		Member:    m,
		CreatedAt: time.Now(),
	}
	s.persistSession()
	return *s.session, nil
}

// Logout clears the session and its persisted entry.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.persistSession()
}

// MemberForToken resolves a session token to the logged-in member.
func (s *Store) MemberForToken(token string) (models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || token == "" || !auth.TokenEqual(token, s.session.Token) {
		return models.Member{}, false
	}
	return s.session.Member, true
}

// CurrentMember returns the logged-in member, if any.
func (s *Store) CurrentMember() (models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return models.Member{}, false
	}
	return s.session.Member, true
}

func copyRecords(records []models.VoteRecord) []models.VoteRecord {
	out := make([]models.VoteRecord, len(records))
	copy(out, records)
	return out
}
