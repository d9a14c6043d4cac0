//go:build unit

package conversation_test

import (
	"testing"
	"time"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/domain/conversation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var extractNow = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func TestExtractor_Extract(t *testing.T) {
	extractor := conversation.NewExtractor()

	testCases := []struct {
		name     string
		text     string
		expected appointment.BookingInfo
	}{
		{
			name: "everything in one message",
			text: "Hi, my name is Sam Carter, email sam@example.com, book me on 25/12/2030 at 2:30 PM regarding annual checkup",
			expected: appointment.BookingInfo{
				Name:    "Sam Carter",
				Email:   "sam@example.com",
				Date:    "25/12/2030",
				Time:    "2:30 PM",
				Purpose: "annual checkup",
			},
		},
		{
			name:     "email only",
			text:     "it's sam.carter+work@example.co.uk",
			expected: appointment.BookingInfo{Email: "sam.carter+work@example.co.uk"},
		},
		{
			name:     "i'm introduction",
			text:     "I'm Priya Sharma and I need an appointment",
			expected: appointment.BookingInfo{Name: "Priya Sharma"},
		},
		{
			name:     "name stops at connective",
			text:     "my name is Sam and I want to book",
			expected: appointment.BookingInfo{Name: "Sam"},
		},
		{
			name:     "iso date",
			text:     "book me for 2030-12-25 please",
			expected: appointment.BookingInfo{Date: "2030-12-25"},
		},
		{
			name:     "bare meridiem time",
			text:     "see you at 2pm",
			expected: appointment.BookingInfo{Time: "2pm"},
		},
		{
			name:     "nothing recognizable",
			text:     "hello there",
			expected: appointment.BookingInfo{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := extractor.Extract(tc.text, extractNow)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("extracted slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractor_RelativeDates(t *testing.T) {
	extractor := conversation.NewExtractor()

	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "today", text: "book me for today", expected: "01/06/2030"},
		{name: "tomorrow", text: "can I come in tomorrow", expected: "02/06/2030"},
		{name: "day after tomorrow", text: "the day after tomorrow works", expected: "03/06/2030"},
		{name: "next week", text: "sometime next week please", expected: "08/06/2030"},
		{name: "explicit date wins over relative", text: "tomorrow or 25/12/2030", expected: "25/12/2030"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := extractor.Extract(tc.text, extractNow)
			assert.Equal(t, tc.expected, info.Date)
		})
	}
}

func TestExtractor_ExtractEmail(t *testing.T) {
	extractor := conversation.NewExtractor()

	t.Run("found", func(t *testing.T) {
		email, ok := extractor.ExtractEmail("check bookings for sam@example.com please")
		assert.True(t, ok)
		assert.Equal(t, "sam@example.com", email)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := extractor.ExtractEmail("check my bookings")
		assert.False(t, ok)
	})
}
