// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: id (national-ID identifier)
  - CastVoteRequest: comment (optional)
  - AddCommentRequest: comment

# Response Types

Types for JSON responses:

  - LoginResponse: token, member
  - CastVoteResponse: votes, message
  - BoardResponse: full board projection (phases, progress, notifications)
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Member: roster entry (id, name, admin flag)
  - Phase: static phase definition (title, tools, drafts, gate label)
  - VoteRecord: one member's approval vote within a phase
  - VotingState: phase id -> vote sequence in voting order
  - Notification: ephemeral feed entry
  - Session: authenticated member plus token

# Constants

Phase status values:

	StatusLocked    = "locked"
	StatusActive    = "active"
	StatusCompleted = "completed"
*/
package models
