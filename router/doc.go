// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers using Go 1.22+
method and path patterns on the standard ServeMux.

Every application route is wrapped in middleware.WithLogging; /health
and / stay unwrapped for quiet liveness probes.
*/
package router
