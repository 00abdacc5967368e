// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the local device storage: a single key-value table with
two entries, the serialized session and the serialized voting state.

# Drivers

The default driver is sqlite (modernc.org/sqlite, pure Go) writing a
local file; postgres (github.com/lib/pq) is supported for deployments
that already run one. Queries use $1 placeholders, which both drivers
accept.

# Entries

	db.Get(conn, db.KeyVotes)    // serialized voting-state snapshot
	db.Put(conn, db.KeySession, payload)
	db.Delete(conn, db.KeySession)

Writes are best-effort: callers log failures and keep serving from the
in-memory state. There is no retry or conflict detection because one
logical session owns the store at a time.
*/
package db
