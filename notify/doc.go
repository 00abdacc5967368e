// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify implements the bounded in-memory notification feed.
// The feed keeps the five most recent vote events and drops the oldest
// on overflow; it exists to bound memory and carries no durability
// guarantee.
package notify
