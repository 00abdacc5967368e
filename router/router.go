// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/boardgate/boardgate/handlers"
	"github.com/boardgate/boardgate/middleware"
	"github.com/boardgate/boardgate/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(st)
	votingHandler := handlers.NewVotingHandler(st)
	boardHandler := handlers.NewBoardHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management
	mux.HandleFunc("POST /session/login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /session/logout", middleware.WithLogging(sessionHandler.Logout))
	mux.HandleFunc("GET /session/me", middleware.WithLogging(sessionHandler.Me))

	// Voting operations
	mux.HandleFunc("POST /phases/{id}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("POST /phases/{id}/comment", middleware.WithLogging(votingHandler.AddComment))

	// Administrative operations (admin-gated in the handler)
	mux.HandleFunc("DELETE /phases/{id}/votes/{memberId}", middleware.WithLogging(votingHandler.RemoveVote))
	mux.HandleFunc("POST /phases/{id}/reset", middleware.WithLogging(votingHandler.ResetPhase))

	// Projections
	mux.HandleFunc("GET /board", middleware.WithLogging(boardHandler.GetBoard))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("boardgate API v1"))
	})

	return mux
}
