package commands

import (
	"context"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/infra"
	"booking-assistant/internal/pkg/clock"
	"booking-assistant/internal/pkg/errs"
	"booking-assistant/internal/usecase/queries"
)

// BookResult is the confirmation payload. JoinURL is filled only when the
// meeting collaborator produced a link synchronously.
type BookResult struct {
	Appointment *queries.AppointmentView
	JoinURL     string
}

type BookingCommands interface {
	Book(ctx context.Context, info appointment.BookingInfo) (*BookResult, error)
	CancelByEmail(ctx context.Context, email string) (int64, error)
}

type bookingCommandsImpl struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	clock           clock.Clock
}

func NewBookingCommands(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		clock:           clock,
	}
}

// Book validates the five slots, inserts the appointment, and fires the
// confirmation hook. The insert itself reports a duplicate (unique index on
// email/date/time), so two concurrent bookings of the same slot cannot both
// succeed.
func (b *bookingCommandsImpl) Book(ctx context.Context, info appointment.BookingInfo) (*BookResult, error) {
	appt, err := appointment.NewAppointment(info, b.clock.Now())
	if err != nil {
		return nil, err
	}

	view, err := b.appointmentRepo.Insert(ctx, appt)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateBooking)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	// Outside the transactional boundary: the booking is committed whatever
	// the notifier does.
	joinURL := b.notifier.BookingConfirmed(ctx, view)

	return &BookResult{Appointment: view, JoinURL: joinURL}, nil
}

// CancelByEmail removes every appointment for the email in one all-or-nothing
// statement. Zero removed is a reported outcome, not an error.
func (b *bookingCommandsImpl) CancelByEmail(ctx context.Context, email string) (int64, error) {
	addr, err := appointment.NewEmail(email)
	if err != nil {
		return 0, err
	}

	count, err := b.appointmentRepo.DeleteByEmail(ctx, addr.Value())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	b.notifier.BookingsCancelled(ctx, addr.Value(), count)

	return count, nil
}
