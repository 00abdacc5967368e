// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/boardgate/boardgate/middleware"
	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/roster"
	"github.com/boardgate/boardgate/store"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// Login handles POST /session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	member, err := roster.Resolve(req.ID)
	if err != nil {
		// Unrecognized identifier leaves any existing session untouched.
		middleware.ErrorResponse(w, http.StatusUnauthorized, "identifier not recognized")
		return
	}

	sess, err := h.store.Login(member)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("member logged in", "member_id", member.ID, "admin", member.IsAdmin)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:  sess.Token,
		Member: member,
	})
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	member, ok := h.sessionMember(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return
	}

	h.store.Logout()
	slog.Info("member logged out", "member_id", member.ID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /session/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	member, ok := h.sessionMember(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, member)
}

func (h *SessionHandler) sessionMember(r *http.Request) (models.Member, bool) {
	return h.store.MemberForToken(r.Header.Get("X-Session-Token"))
}
