// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the voting state store: the one component with real
invariants. It owns the phase->votes mapping, the session, and the
notification feed, and persists the first two after every mutation.

# Invariants

  - At most one VoteRecord per (phase, member); repeat casts are no-ops.
  - A phase's vote sequence never exceeds the roster size.
  - The first non-empty comment on a vote wins and is never overwritten.
  - Votes land only on the derived active phase (ErrPhaseLocked otherwise).

# Derivation

Active phase, phase status, progress percentages, and completed draft
counts are pure functions of the vote sequences, recomputed on every
read. Nothing derived is stored, so an administrative removal or reset
immediately re-locks later phases with no reconciliation step.

# Persistence

State lives in two entries of the db package's key-value table. The
votes entry is wrapped in a versioned envelope; restore runs a
structural validator and discards anything that does not match the
current schema (including the legacy bare-identifier shape) in favor
of an empty four-phase state. Writes are best-effort and logged on
failure.
*/
package store
