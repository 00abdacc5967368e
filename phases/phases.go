// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package phases

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/boardgate/boardgate/models"
)

// ErrUnknownPhase is returned for phase ids outside the plan.
var ErrUnknownPhase = errors.New("unknown phase")

//go:embed plan.yaml
var planYAML []byte

var plan []models.Phase

func init() {
	var doc struct {
		Phases []models.Phase `yaml:"phases"`
	}
	if err := yaml.Unmarshal(planYAML, &doc); err != nil {
		panic(fmt.Sprintf("phases: invalid embedded plan.yaml: %v", err))
	}
	if len(doc.Phases) == 0 {
		panic("phases: embedded plan.yaml has no phases")
	}
	// Phase ids must be 1..N in order; the cascade in the store depends on it.
	for i, p := range doc.Phases {
		if p.ID != i+1 {
			panic(fmt.Sprintf("phases: plan.yaml phase at index %d has id %d", i, p.ID))
		}
	}
	plan = doc.Phases
}

// Plan returns a copy of the full phase plan in order.
func Plan() []models.Phase {
	out := make([]models.Phase, len(plan))
	copy(out, plan)
	return out
}

// Count returns the number of phases in the plan.
func Count() int {
	return len(plan)
}

// ByID returns the phase definition for the given id.
func ByID(id int) (models.Phase, error) {
	if id < 1 || id > len(plan) {
		return models.Phase{}, ErrUnknownPhase
	}
	return plan[id-1], nil
}

// TotalDrafts returns the number of draft deliverables across all phases.
func TotalDrafts() int {
	total := 0
	for _, p := range plan {
		total += len(p.Drafts)
	}
	return total
}
