// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Boardgate API server.

Boardgate is a board-governance voting portal backend: seven roster
members authenticate with a national-ID identifier and cast one
approval vote (with optional comment) per strategic-planning phase. A
phase unlocks only when the prior phase reaches unanimous approval;
the administrator can remove votes and reset phases.

# Starting the Server

The server runs with no configuration, writing state to a local sqlite
file:

	go run main.go

Or with flags:

	go run main.go -p 3319 -d boardgate.db -t sqlite

# Configuration

Optional settings (flags override environment; .env is loaded first):

  - PORT (-p): Server port (default: 3319)
  - DATABASE_URL (-d): Database URL or sqlite file path (default: boardgate.db)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: voting state store (the core: dedup, phase gating, derived projections)
  - roster: static member directory
  - phases: static four-phase plan definition
  - notify: bounded notification feed
  - handlers: HTTP request handlers (session, voting, board)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Session token generation
  - db: Key-value persistence (sqlite or postgres)
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
