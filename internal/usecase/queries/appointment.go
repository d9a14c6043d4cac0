package queries

import (
	"context"
	"time"

	"booking-assistant/internal/domain/appointment"

	"github.com/google/uuid"
)

// AppointmentView is the read model handed to handlers and notifiers. Date and
// Time carry the canonical text forms (DD/MM/YYYY, 24-hour HH:MM).
type AppointmentView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
}

// AppointmentReadStore is implemented in infra over pgx. All listing results
// come back ordered by (date, time) ascending.
type AppointmentReadStore interface {
	FindByEmail(ctx context.Context, email string) ([]*AppointmentView, error)
	FindByEmailAndDate(ctx context.Context, email string, date appointment.Date) ([]*AppointmentView, error)
	FindUpcoming(ctx context.Context, email string, now time.Time) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	ListByEmail(ctx context.Context, email string) ([]*AppointmentView, error)
	ListByEmailAndDate(ctx context.Context, email, date string) ([]*AppointmentView, error)
	ListUpcoming(ctx context.Context, email string, now time.Time) ([]*AppointmentView, error)
	NextUpcoming(ctx context.Context, email string, now time.Time) (*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*AppointmentView, error) {
	addr, err := appointment.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return q.readStore.FindByEmail(ctx, addr.Value())
}

func (q *appointmentQueriesImpl) ListByEmailAndDate(ctx context.Context, email, date string) ([]*AppointmentView, error) {
	addr, err := appointment.NewEmail(email)
	if err != nil {
		return nil, err
	}
	day, err := appointment.NewDate(date)
	if err != nil {
		return nil, err
	}
	return q.readStore.FindByEmailAndDate(ctx, addr.Value(), day)
}

func (q *appointmentQueriesImpl) ListUpcoming(ctx context.Context, email string, now time.Time) ([]*AppointmentView, error) {
	addr, err := appointment.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return q.readStore.FindUpcoming(ctx, addr.Value(), now)
}

// NextUpcoming returns the soonest future appointment, or nil without error
// when the email has none scheduled.
func (q *appointmentQueriesImpl) NextUpcoming(ctx context.Context, email string, now time.Time) (*AppointmentView, error) {
	upcoming, err := q.ListUpcoming(ctx, email, now)
	if err != nil {
		return nil, err
	}
	if len(upcoming) == 0 {
		return nil, nil
	}
	return upcoming[0], nil
}
