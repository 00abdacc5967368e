// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/phases"
	"github.com/boardgate/boardgate/roster"
)

// snapshotVersion tags the persisted votes entry. Earlier deployments
// stored bare identifier arrays with no envelope; anything that is not
// version 1 is discarded rather than migrated.
const snapshotVersion = 1

// ErrLegacySnapshot reports a persisted votes entry that does not match
// the current schema. Restore recovers by starting from an empty state.
var ErrLegacySnapshot = errors.New("persisted votes entry does not match the current schema")

type snapshot struct {
	Version int                       `json:"version"`
	Phases  map[string][]voteSnapshot `json:"phases"`
}

type voteSnapshot struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Comment    string `json:"comment,omitempty"`
	CastAt     string `json:"cast_at,omitempty"`
}

// encodeSnapshot serializes the voting state inside the versioned envelope.
func encodeSnapshot(votes models.VotingState) (string, error) {
	snap := snapshot{
		Version: snapshotVersion,
		Phases:  make(map[string][]voteSnapshot, phases.Count()),
	}
	for id, records := range votes {
		out := make([]voteSnapshot, 0, len(records))
		for _, r := range records {
			out = append(out, voteSnapshot{
				MemberID:   r.MemberID,
				MemberName: r.MemberName,
				Comment:    r.Comment,
				CastAt:     r.CastAt.Format(time.RFC3339Nano),
			})
		}
		snap.Phases[strconv.Itoa(id)] = out
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode votes snapshot: %w", err)
	}
	return string(raw), nil
}

// decodeSnapshot validates a persisted votes entry structurally and
// returns the restored state. Every rejection is ErrLegacySnapshot so
// the caller can recover uniformly; decode never panics on bad input.
func decodeSnapshot(raw string) (models.VotingState, error) {
	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		// Covers the legacy shape (phase arrays of bare identifier
		// strings) as well as any other malformed payload.
		return nil, fmt.Errorf("%w: %v", ErrLegacySnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrLegacySnapshot, snap.Version)
	}

	votes := emptyState()
	for key, records := range snap.Phases {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: phase key %q", ErrLegacySnapshot, key)
		}
		if _, err := phases.ByID(id); err != nil {
			return nil, fmt.Errorf("%w: phase id %d", ErrLegacySnapshot, id)
		}
		if len(records) > roster.Size() {
			return nil, fmt.Errorf("%w: phase %d holds %d votes for a roster of %d",
				ErrLegacySnapshot, id, len(records), roster.Size())
		}
		seen := make(map[string]bool, len(records))
		restored := make([]models.VoteRecord, 0, len(records))
		for _, r := range records {
			if r.MemberID == "" || seen[r.MemberID] {
				return nil, fmt.Errorf("%w: phase %d has a missing or duplicate member id", ErrLegacySnapshot, id)
			}
			seen[r.MemberID] = true
			rec := models.VoteRecord{
				MemberID:   r.MemberID,
				MemberName: r.MemberName,
				Comment:    r.Comment,
			}
			if r.CastAt != "" {
				// Timestamps are display metadata; a bad one does not
				// invalidate the whole snapshot.
				rec.CastAt, _ = time.Parse(time.RFC3339Nano, r.CastAt)
			}
			restored = append(restored, rec)
		}
		votes[id] = restored
	}
	return votes, nil
}

// emptyState returns a fresh voting state with every phase present and empty.
func emptyState() models.VotingState {
	votes := make(models.VotingState, phases.Count())
	for id := 1; id <= phases.Count(); id++ {
		votes[id] = nil
	}
	return votes
}
