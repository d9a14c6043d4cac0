//go:build unit

package conversation_test

import (
	"testing"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/domain/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_FirstMissing(t *testing.T) {
	session := conversation.NewSession("s1")

	field, ok := session.FirstMissing()
	require.True(t, ok)
	assert.Equal(t, appointment.FieldName, field)

	session.Slots.Name = "Sam"
	session.Slots.Email = "sam@example.com"

	field, ok = session.FirstMissing()
	require.True(t, ok)
	assert.Equal(t, appointment.FieldDate, field)

	session.Slots.Date = "25/12/2030"
	session.Slots.Time = "14:30"
	session.Slots.Purpose = "checkup"

	_, ok = session.FirstMissing()
	assert.False(t, ok)
}

func TestSession_MergeSlots(t *testing.T) {
	session := conversation.NewSession("s1")
	session.Slots.Name = "Sam"

	session.MergeSlots(appointment.BookingInfo{
		Name:  "Somebody Else",
		Email: "sam@example.com",
		Date:  "  ",
	})

	assert.Equal(t, "Sam", session.Slots.Name, "existing slots must not be overwritten")
	assert.Equal(t, "sam@example.com", session.Slots.Email)
	assert.Empty(t, session.Slots.Date, "blank extractions are not merged")
}

func TestSession_Reset(t *testing.T) {
	session := conversation.NewSession("s1")
	session.State = conversation.StateCollectingTime
	session.Slots.Name = "Sam"
	session.Slots.Email = "sam@example.com"

	session.Reset()

	assert.Equal(t, conversation.StateIdle, session.State)
	assert.Equal(t, appointment.BookingInfo{}, session.Slots)
}

func TestState_Mapping(t *testing.T) {
	for _, f := range appointment.RequiredFields {
		state := conversation.CollectingStateFor(f)
		assert.True(t, state.IsCollecting())

		back, ok := conversation.FieldFor(state)
		require.True(t, ok)
		assert.Equal(t, f, back)
	}

	assert.False(t, conversation.StateIdle.IsCollecting())
	_, ok := conversation.FieldFor(conversation.StateConfirmed)
	assert.False(t, ok)
}
