// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"math"

	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/phases"
	"github.com/boardgate/boardgate/roster"
)

// AllCompleteSentinel is the active-phase value reported once every
// phase has reached unanimous approval: one past the last phase id.
func AllCompleteSentinel() int {
	return phases.Count() + 1
}

// ActivePhase derives the currently active phase from vote counts.
// Phase 1 is active until its sequence holds exactly one vote per
// roster member, then the cascade moves on; partial quorums never
// advance it. Returns AllCompleteSentinel when phase 4 is also full.
func (s *Store) ActivePhase() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePhase()
}

func (s *Store) activePhase() int {
	for id := 1; id <= phases.Count(); id++ {
		if len(s.votes[id]) < roster.Size() {
			return id
		}
	}
	return AllCompleteSentinel()
}

// PhaseStatus reports locked, active, or completed for phaseID
// relative to the derived active phase.
func (s *Store) PhaseStatus(phaseID int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phaseStatus(phaseID)
}

func (s *Store) phaseStatus(phaseID int) string {
	switch active := s.activePhase(); {
	case phaseID < active:
		return models.StatusCompleted
	case phaseID == active:
		return models.StatusActive
	default:
		return models.StatusLocked
	}
}

// OverallProgress is the rounded percentage of all possible votes cast:
// round(100 * total votes / (phase count * roster size)).
func (s *Store) OverallProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overallProgress()
}

func (s *Store) overallProgress() int {
	total := 0
	for id := 1; id <= phases.Count(); id++ {
		total += len(s.votes[id])
	}
	possible := phases.Count() * roster.Size()
	return int(math.Round(100 * float64(total) / float64(possible)))
}

// PhasePercent is the share of the roster that has voted on phaseID.
func (s *Store) PhasePercent(phaseID int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phasePercent(phaseID)
}

func (s *Store) phasePercent(phaseID int) float64 {
	return 100 * float64(len(s.votes[phaseID])) / float64(roster.Size())
}

// CompletedDraftCount sums the draft deliverables of every phase
// strictly before the active one. A phase's drafts count as approved
// only once the phase itself is fully completed.
func (s *Store) CompletedDraftCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedDraftCount()
}

func (s *Store) completedDraftCount() int {
	active := s.activePhase()
	count := 0
	for _, p := range phases.Plan() {
		if p.ID >= active {
			break
		}
		count += len(p.Drafts)
	}
	return count
}

// Board assembles the full projection bundle the presentation layer
// reads: per-phase status, votes and percentages, overall progress,
// draft counts, and the recent notification feed. member may be nil
// for unauthenticated reads.
func (s *Store) Board(member *models.Member) models.BoardResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.activePhase()
	views := make([]models.PhaseView, 0, phases.Count())
	for _, p := range phases.Plan() {
		views = append(views, models.PhaseView{
			ID:               p.ID,
			Title:            p.Title,
			Status:           s.phaseStatus(p.ID),
			GateLabel:        p.GateLabel,
			MethodologyTools: p.MethodologyTools,
			Drafts:           p.Drafts,
			Votes:            copyRecords(s.votes[p.ID]),
			VotePercent:      s.phasePercent(p.ID),
		})
	}

	return models.BoardResponse{
		ActivePhase:     active,
		AllComplete:     active == AllCompleteSentinel(),
		Phases:          views,
		OverallProgress: s.overallProgress(),
		CompletedDrafts: s.completedDraftCount(),
		TotalDrafts:     phases.TotalDrafts(),
		Notifications:   s.feed.Recent(),
		Member:          member,
	}
}
