// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package phases holds the static four-phase strategic-planning plan,
defined in the embedded plan.yaml: title, methodology tools, draft
deliverables, and the gate label shown at each approval gate.

The plan is configuration, not state: which phase is active is derived
from vote counts by the store, never recorded here.
*/
package phases
