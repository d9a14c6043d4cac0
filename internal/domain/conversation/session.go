package conversation

import (
	"strings"
	"time"

	"booking-assistant/internal/domain/appointment"
)

// Session is the ephemeral per-conversation state: the dialogue position plus
// the slots collected so far. It is owned by exactly one conversation; the
// dialogue layer serializes turns so a session is never mutated concurrently.
// Fields are exported for store round-tripping (JSON in the Redis store).
type Session struct {
	ID        string                  `json:"id"`
	State     State                   `json:"state"`
	Slots     appointment.BookingInfo `json:"slots"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: StateIdle,
	}
}

// Reset returns the session to idle with all slots discarded.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Slots = appointment.BookingInfo{}
}

// FirstMissing reports the earliest required field, in collection order, that
// is still unset.
func (s *Session) FirstMissing() (appointment.Field, bool) {
	for _, f := range appointment.RequiredFields {
		if strings.TrimSpace(s.Slots.Get(f)) == "" {
			return f, true
		}
	}
	return "", false
}

// MergeSlots copies every non-empty field of extracted into the session's
// slots without overwriting values collected earlier.
func (s *Session) MergeSlots(extracted appointment.BookingInfo) {
	for _, f := range appointment.RequiredFields {
		if strings.TrimSpace(s.Slots.Get(f)) == "" {
			if v := strings.TrimSpace(extracted.Get(f)); v != "" {
				s.Slots.Set(f, v)
			}
		}
	}
}
