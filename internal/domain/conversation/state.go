package conversation

import "booking-assistant/internal/domain/appointment"

// State is the dialogue position of a booking session.
type State string

const (
	StateIdle              State = "idle"
	StateCollectingName    State = "collecting_name"
	StateCollectingEmail   State = "collecting_email"
	StateCollectingDate    State = "collecting_date"
	StateCollectingTime    State = "collecting_time"
	StateCollectingPurpose State = "collecting_purpose"
	StateConfirmed         State = "confirmed"
	StateDuplicateConflict State = "duplicate_conflict"
	StateError             State = "error"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsCollecting() bool {
	switch s {
	case StateCollectingName, StateCollectingEmail, StateCollectingDate,
		StateCollectingTime, StateCollectingPurpose:
		return true
	default:
		return false
	}
}

var stateByField = map[appointment.Field]State{
	appointment.FieldName:    StateCollectingName,
	appointment.FieldEmail:   StateCollectingEmail,
	appointment.FieldDate:    StateCollectingDate,
	appointment.FieldTime:    StateCollectingTime,
	appointment.FieldPurpose: StateCollectingPurpose,
}

var fieldByState = map[State]appointment.Field{
	StateCollectingName:    appointment.FieldName,
	StateCollectingEmail:   appointment.FieldEmail,
	StateCollectingDate:    appointment.FieldDate,
	StateCollectingTime:    appointment.FieldTime,
	StateCollectingPurpose: appointment.FieldPurpose,
}

// CollectingStateFor maps a booking field to the state that collects it.
func CollectingStateFor(f appointment.Field) State {
	return stateByField[f]
}

// FieldFor maps a collecting state to the field it collects.
func FieldFor(s State) (appointment.Field, bool) {
	f, ok := fieldByState[s]
	return f, ok
}
