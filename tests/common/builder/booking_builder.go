//go:build unit || e2e

package builder

import (
	"time"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Name    string
	Email   string
	Date    string
	Time    string
	Purpose string
	Now     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:    "Sam Carter",
		Email:   "sam@example.com",
		Date:    "25/12/2030",
		Time:    "14:30",
		Purpose: "checkup",
		Now:     time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

func (b *BookingBuilder) WithPurpose(purpose string) *BookingBuilder {
	b.Purpose = purpose
	return b
}

// Build methods
func (b *BookingBuilder) BuildInfo() appointment.BookingInfo {
	return appointment.BookingInfo{
		Name:    b.Name,
		Email:   b.Email,
		Date:    b.Date,
		Time:    b.Time,
		Purpose: b.Purpose,
	}
}

func (b *BookingBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(b.BuildInfo(), b.Now)
}

func (b *BookingBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     b.Email,
		Date:      appointment.NormalizeField(appointment.FieldDate, b.Date),
		Time:      appointment.NormalizeField(appointment.FieldTime, b.Time),
		Purpose:   b.Purpose,
		CreatedAt: b.Now,
	}
}
