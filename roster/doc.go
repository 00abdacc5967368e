// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster is the member directory: a static allow-list of board
members defined in the embedded roster.yaml, one of whom is flagged as
administrator.

Lookup is deterministic and side-effect free:

	member, err := roster.Resolve("  1045728316 ")

Surrounding whitespace is trimmed before the exact-match comparison.
There is no identity verification beyond roster membership; real
authentication is out of scope for this service.
*/
package roster
