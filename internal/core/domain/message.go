package domain

import (
	"sort"
	"strings"
	"time"
)

// Message is a single entry in a warden-guest conversation thread.
type Message struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	ThreadID string    `json:"thread_id" bson:"thread_id"`
	FromID   string    `json:"from_id" bson:"from_id"`
	ToID     string    `json:"to_id" bson:"to_id"`
	Body     string    `json:"body" bson:"body"`
	SentAt   time.Time `json:"sent_at" bson:"sent_at"`
}

// ThreadID derives the canonical thread identifier for a pair of participants.
// The same two participants always map to the same thread regardless of who
// sent first.
func ThreadID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}
