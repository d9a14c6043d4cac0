package commands

import (
	"context"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/usecase/queries"
)

// AppointmentRepository is the write side of the store. Insert must be atomic
// with respect to concurrent inserts of the same (email, date, time): the
// duplicate check is the storage engine's unique index, not a separate read.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *appointment.Appointment) (*queries.AppointmentView, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// Notifier is the outbound collaborator hook. Both calls sit outside the
// transactional boundary: implementations log their own failures and never
// report them back, so a broken mailer cannot undo a committed booking.
// BookingConfirmed may return a meeting join URL when one is available
// synchronously; empty means none.
type Notifier interface {
	BookingConfirmed(ctx context.Context, appt *queries.AppointmentView) (joinURL string)
	BookingsCancelled(ctx context.Context, email string, count int64)
}
