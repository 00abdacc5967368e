// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/boardgate/boardgate/models"
)

// DefaultCap is the number of notifications retained before eviction.
const DefaultCap = 5

// Feed is a bounded FIFO of recent notifications. When full, pushing
// evicts the oldest entry. Entries are never persisted.
type Feed struct {
	cap     int
	entries []models.Notification
}

// NewFeed returns a feed bounded at max entries. max <= 0 falls back
// to DefaultCap.
func NewFeed(max int) *Feed {
	if max <= 0 {
		max = DefaultCap
	}
	return &Feed{cap: max}
}

// Push appends a notification, evicting the oldest when the feed is full.
func (f *Feed) Push(message string) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now(),
	}
	f.entries = append(f.entries, n)
	if len(f.entries) > f.cap {
		f.entries = f.entries[len(f.entries)-f.cap:]
	}
	return n
}

// Recent returns retained notifications newest-first, with a humanized
// age string for display.
func (f *Feed) Recent() []models.Notification {
	out := make([]models.Notification, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		n := f.entries[i]
		n.Age = humanize.Time(n.Timestamp)
		out = append(out, n)
	}
	return out
}

// Len returns the number of retained notifications.
func (f *Feed) Len() int {
	return len(f.entries)
}
