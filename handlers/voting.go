// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/boardgate/boardgate/middleware"
	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/phases"
	"github.com/boardgate/boardgate/store"
)

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(st *store.Store) *VotingHandler {
	return &VotingHandler{store: st}
}

// CastVote handles POST /phases/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	phaseID, ok := parsePhaseID(w, r)
	if !ok {
		return
	}

	member, ok := h.sessionMember(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return
	}

	// Body is optional: a vote without a comment sends none.
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	votes, created, err := h.store.CastVote(phaseID, member, req.Comment)
	if errors.Is(err, store.ErrUnknownPhase) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Phase not found")
		return
	}
	if errors.Is(err, store.ErrPhaseLocked) {
		middleware.ErrorResponse(w, http.StatusConflict, "Phase is not open for voting")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "phase_id", phaseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	status := http.StatusOK
	message := "Vote already recorded"
	if created {
		status = http.StatusCreated
		message = "Vote recorded"
		slog.Info("vote cast", "phase_id", phaseID, "member_id", member.ID)
	}

	middleware.JSONResponse(w, status, models.CastVoteResponse{
		Votes:   votes,
		Message: message,
	})
}

// AddComment handles POST /phases/{id}/comment
func (h *VotingHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	phaseID, ok := parsePhaseID(w, r)
	if !ok {
		return
	}

	member, ok := h.sessionMember(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return
	}

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Comment == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "comment is required")
		return
	}

	changed, err := h.store.AddComment(phaseID, member.ID, req.Comment)
	if errors.Is(err, store.ErrUnknownPhase) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Phase not found")
		return
	}
	if err != nil {
		slog.Error("failed to add comment", "error", err, "phase_id", phaseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	message := "Comment unchanged"
	if changed {
		message = "Comment added"
		slog.Info("comment added", "phase_id", phaseID, "member_id", member.ID)
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": message})
}

// RemoveVote handles DELETE /phases/{id}/votes/{memberId}
func (h *VotingHandler) RemoveVote(w http.ResponseWriter, r *http.Request) {
	phaseID, ok := parsePhaseID(w, r)
	if !ok {
		return
	}

	admin, ok := h.adminMember(w, r)
	if !ok {
		return
	}

	memberID := r.PathValue("memberId")
	if memberID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "memberId is required")
		return
	}

	if _, err := phases.ByID(phaseID); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Phase not found")
		return
	}

	message := "No vote to remove"
	if h.store.RemoveVote(phaseID, memberID) {
		message = "Vote removed"
		slog.Info("vote removed", "phase_id", phaseID, "member_id", memberID, "admin_id", admin.ID)
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": message})
}

// ResetPhase handles POST /phases/{id}/reset
func (h *VotingHandler) ResetPhase(w http.ResponseWriter, r *http.Request) {
	phaseID, ok := parsePhaseID(w, r)
	if !ok {
		return
	}

	admin, ok := h.adminMember(w, r)
	if !ok {
		return
	}

	if err := h.store.ResetPhase(phaseID); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Phase not found")
		return
	}

	slog.Info("phase reset", "phase_id", phaseID, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Phase reset"})
}

func (h *VotingHandler) sessionMember(r *http.Request) (models.Member, bool) {
	return h.store.MemberForToken(r.Header.Get("X-Session-Token"))
}

// adminMember authenticates the request and enforces the admin flag,
// writing the error response itself when either check fails.
func (h *VotingHandler) adminMember(w http.ResponseWriter, r *http.Request) (models.Member, bool) {
	member, ok := h.sessionMember(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return models.Member{}, false
	}
	if !member.IsAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Administrator access required")
		return models.Member{}, false
	}
	return member, true
}

func parsePhaseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	phaseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid phase id")
		return 0, false
	}
	return phaseID, true
}
