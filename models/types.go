// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Phase status constants
const (
	StatusLocked    = "locked"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Request types

type LoginRequest struct {
	ID string `json:"id"`
}

type CastVoteRequest struct {
	Comment string `json:"comment,omitempty"`
}

type AddCommentRequest struct {
	Comment string `json:"comment"`
}

// Response types

type LoginResponse struct {
	Token  string `json:"token"`
	Member Member `json:"member"`
}

type CastVoteResponse struct {
	Votes   []VoteRecord `json:"votes"`
	Message string       `json:"message"`
}

type PhaseView struct {
	ID               int          `json:"id"`
	Title            string       `json:"title"`
	Status           string       `json:"status"`
	GateLabel        string       `json:"gate_label"`
	MethodologyTools []string     `json:"methodology_tools"`
	Drafts           []string     `json:"drafts"`
	Votes            []VoteRecord `json:"votes"`
	VotePercent      float64      `json:"vote_percent"`
}

type BoardResponse struct {
	ActivePhase     int            `json:"active_phase"`
	AllComplete     bool           `json:"all_complete"`
	Phases          []PhaseView    `json:"phases"`
	OverallProgress int            `json:"overall_progress"`
	CompletedDrafts int            `json:"completed_drafts"`
	TotalDrafts     int            `json:"total_drafts"`
	Notifications   []Notification `json:"notifications"`
	Member          *Member        `json:"member,omitempty"`
}

// Domain types

type Member struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	IsAdmin bool   `json:"is_admin" yaml:"admin"`
}

type Phase struct {
	ID               int      `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	MethodologyTools []string `json:"methodology_tools" yaml:"methodology_tools"`
	Drafts           []string `json:"drafts" yaml:"drafts"`
	GateLabel        string   `json:"gate_label" yaml:"gate_label"`
}

type VoteRecord struct {
	MemberID   string    `json:"member_id"`
	MemberName string    `json:"member_name"`
	Comment    string    `json:"comment,omitempty"`
	CastAt     time.Time `json:"cast_at"`
}

// VotingState maps a phase id (1..4) to its vote sequence.
// Slice order is voting order; a member appears at most once per phase.
type VotingState map[int][]VoteRecord

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Age       string    `json:"age"`
}

type Session struct {
	Token     string    `json:"token"`
	Member    Member    `json:"member"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
