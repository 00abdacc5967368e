// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/boardgate/boardgate/models"
)

// ErrNotFound is returned when an identifier does not match any roster member.
var ErrNotFound = errors.New("identifier not recognized")

//go:embed roster.yaml
var rosterYAML []byte

var members []models.Member

func init() {
	var doc struct {
		Members []models.Member `yaml:"members"`
	}
	if err := yaml.Unmarshal(rosterYAML, &doc); err != nil {
		panic(fmt.Sprintf("roster: invalid embedded roster.yaml: %v", err))
	}
	if len(doc.Members) == 0 {
		panic("roster: embedded roster.yaml has no members")
	}
	members = doc.Members
}

// Resolve matches a submitted identifier against the static roster.
// Surrounding whitespace is trimmed; the match itself is exact.
func Resolve(identifier string) (models.Member, error) {
	id := strings.TrimSpace(identifier)
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Member{}, ErrNotFound
}

// Members returns a copy of the full roster in definition order.
func Members() []models.Member {
	out := make([]models.Member, len(members))
	copy(out, members)
	return out
}

// Size returns the number of roster members. All quorum math reads this.
func Size() int {
	return len(members)
}
