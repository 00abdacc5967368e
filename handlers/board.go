// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/boardgate/boardgate/middleware"
	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/store"
)

type BoardHandler struct {
	store *store.Store
}

func NewBoardHandler(st *store.Store) *BoardHandler {
	return &BoardHandler{store: st}
}

// GetBoard handles GET /board
// The projection is public; the member field is populated only when a
// valid session token accompanies the request.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	var member *models.Member
	if m, ok := h.store.MemberForToken(r.Header.Get("X-Session-Token")); ok {
		member = &m
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.Board(member))
}
