// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session token generation and comparison.

Login issues a random URL-safe token which the client replays in the
X-Session-Token header. Tokens are opaque: validity is checked against
the persisted session entry, not by any signature scheme. TokenEqual
uses a constant-time comparison.
*/
package auth
