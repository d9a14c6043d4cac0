package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is the sole persisted aggregate. Construction goes through
// NewAppointment so a record can only exist after every slot validated; the
// store assigns id and createdAt on insert.
type Appointment struct {
	id        uuid.UUID
	name      Name
	email     Email
	date      Date
	timeOfDay TimeOfDay
	purpose   Purpose
	createdAt time.Time
}

// NewAppointment validates all five slots against now and assembles the
// aggregate. The date must be today or later at the time of the call.
func NewAppointment(info BookingInfo, now time.Time) (*Appointment, error) {
	name, err := NewName(info.Name)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(info.Email)
	if err != nil {
		return nil, err
	}
	date, err := NewDate(info.Date)
	if err != nil {
		return nil, err
	}
	if date.Before(now) {
		return nil, ErrInvalidDate
	}
	timeOfDay, err := NewTimeOfDay(info.Time)
	if err != nil {
		return nil, err
	}
	purpose, err := NewPurpose(info.Purpose)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		name:      name,
		email:     email,
		date:      date,
		timeOfDay: timeOfDay,
		purpose:   purpose,
	}, nil
}

// ReconstructAppointment rebuilds a persisted record without re-running the
// feasibility checks; the stored date may legitimately be in the past by now.
func ReconstructAppointment(
	id uuid.UUID,
	name Name,
	email Email,
	date Date,
	timeOfDay TimeOfDay,
	purpose Purpose,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		name:      name,
		email:     email,
		date:      date,
		timeOfDay: timeOfDay,
		purpose:   purpose,
		createdAt: createdAt,
	}
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) Name() Name           { return a.name }
func (a *Appointment) Email() Email         { return a.email }
func (a *Appointment) Date() Date           { return a.date }
func (a *Appointment) TimeOfDay() TimeOfDay { return a.timeOfDay }
func (a *Appointment) Purpose() Purpose     { return a.purpose }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
