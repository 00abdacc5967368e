// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers: the presentation
boundary that reads store projections and dispatches validated intents.

# Handler Types

Each handler is a struct holding the store dependency:

  - SessionHandler: login, logout, current member
  - VotingHandler: cast vote, amend comment, admin removal and reset
  - BoardHandler: the full board projection

Handlers are created via constructor functions that accept *store.Store:

	votingHandler := handlers.NewVotingHandler(st)

# Session Flow

Members authenticate with a roster identifier; login returns a token
replayed in the X-Session-Token header:

	POST /session/login  → Login (401 "identifier not recognized")
	POST /session/logout → Logout
	GET  /session/me     → Me

# Voting Flow

Voting targets the currently active phase only; the store enforces this
independently of any client-side gating:

	POST   /phases/{id}/votes            → CastVote (201 new, 200 repeat, 409 locked)
	POST   /phases/{id}/comment          → AddComment (first non-empty comment wins)
	DELETE /phases/{id}/votes/{memberId} → RemoveVote (admin only)
	POST   /phases/{id}/reset            → ResetPhase (admin only)

Admin operations return 403 for non-administrator sessions. Removal of
an absent vote is a 200 no-op, not an error.

# Projections

	GET /board → GetBoard

Returns phase statuses, vote lists, per-phase and overall progress,
draft counts, and the recent notification feed.
*/
package handlers
