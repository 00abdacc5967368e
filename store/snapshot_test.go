package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/boardgate/boardgate/models"
	"github.com/boardgate/boardgate/roster"
)

func TestSnapshotRoundTrip(t *testing.T) {
	votes := emptyState()
	votes[1] = []models.VoteRecord{
		{MemberID: "1045728316", MemberName: "Abdullah Al-Harbi", Comment: "approved", CastAt: time.Now()},
		{MemberID: "1089234571", MemberName: "Mohammed Al-Qahtani"},
	}

	raw, err := encodeSnapshot(votes)
	if err != nil {
		t.Fatalf("Expected encode to succeed, got %v", err)
	}

	decoded, err := decodeSnapshot(raw)
	if err != nil {
		t.Fatalf("Expected decode to succeed, got %v", err)
	}
	if len(decoded[1]) != 2 {
		t.Fatalf("Expected 2 votes in phase 1, got %d", len(decoded[1]))
	}
	if decoded[1][0].MemberID != "1045728316" || decoded[1][0].Comment != "approved" {
		t.Errorf("Round trip lost data: %+v", decoded[1][0])
	}
	if decoded[1][0].CastAt.IsZero() {
		t.Error("Expected CastAt to survive the round trip")
	}
	if decoded[1][1].Comment != "" {
		t.Errorf("Expected empty comment, got %q", decoded[1][1].Comment)
	}
	if len(decoded[2]) != 0 {
		t.Errorf("Expected phase 2 empty, got %d", len(decoded[2]))
	}
}

func TestDecodeSnapshotRejections(t *testing.T) {
	overfull := `{"version":1,"phases":{"1":[`
	for i := 0; i <= roster.Size(); i++ {
		if i > 0 {
			overfull += ","
		}
		overfull += fmt.Sprintf(`{"member_id":"m%d","member_name":"Member %d"}`, i, i)
	}
	overfull += `]}}`

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "legacy bare identifier arrays",
			raw:  `{"1":["1045728316"],"2":[],"3":[],"4":[]}`,
		},
		{
			name: "missing version envelope",
			raw:  `{"phases":{"1":[]}}`,
		},
		{
			name: "future version",
			raw:  `{"version":2,"phases":{"1":[]}}`,
		},
		{
			name: "not json",
			raw:  `<state/>`,
		},
		{
			name: "non-numeric phase key",
			raw:  `{"version":1,"phases":{"one":[]}}`,
		},
		{
			name: "phase id outside the plan",
			raw:  `{"version":1,"phases":{"9":[]}}`,
		},
		{
			name: "record without member id",
			raw:  `{"version":1,"phases":{"1":[{"member_name":"Ghost"}]}}`,
		},
		{
			name: "duplicate member in one phase",
			raw:  `{"version":1,"phases":{"1":[{"member_id":"a","member_name":"A"},{"member_id":"a","member_name":"A"}]}}`,
		},
		{
			name: "more votes than roster members",
			raw:  overfull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeSnapshot(tt.raw); !errors.Is(err, ErrLegacySnapshot) {
				t.Errorf("Expected ErrLegacySnapshot, got %v", err)
			}
		})
	}
}

func TestDecodeSnapshotToleratesBadTimestamp(t *testing.T) {
	raw := `{"version":1,"phases":{"1":[{"member_id":"a","member_name":"A","cast_at":"yesterday"}]}}`

	decoded, err := decodeSnapshot(raw)
	if err != nil {
		t.Fatalf("Expected bad timestamp to be tolerated, got %v", err)
	}
	if !decoded[1][0].CastAt.IsZero() {
		t.Error("Expected zero CastAt for unparseable timestamp")
	}
}

func TestEmptyState(t *testing.T) {
	votes := emptyState()
	for id := 1; id <= 4; id++ {
		records, ok := votes[id]
		if !ok {
			t.Errorf("Expected phase %d present", id)
		}
		if len(records) != 0 {
			t.Errorf("Expected phase %d empty, got %d", id, len(records))
		}
	}
}
