package repository

import (
	"context"
	"errors"
	"time"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/infra"
	"booking-assistant/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

// AppointmentRepository is the write side of the store. The duplicate check
// rides on the unique index over (email, date, time): the insert statement
// itself reports the conflict, so check and insert are one atomic step even
// under concurrent bookings of the same slot.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Insert(ctx context.Context, appt *appointment.Appointment) (*queries.AppointmentView, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (name, email, date, time, purpose)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, appt.Name().Value(),
		appt.Email().Value(),
		appt.Date().Time(),
		appt.TimeOfDay().String(),
		appt.Purpose().Value(),
	).Scan(&id, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("appointment slot already booked", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert appointment", err)
	}

	return &queries.AppointmentView{
		ID:        id,
		Name:      appt.Name().Value(),
		Email:     appt.Email().Value(),
		Date:      appt.Date().String(),
		Time:      appt.TimeOfDay().String(),
		Purpose:   appt.Purpose().Value(),
		CreatedAt: createdAt,
	}, nil
}

// DeleteByEmail removes every appointment for the email in a single statement
// and reports how many went away. Zero is a normal outcome.
func (r *AppointmentRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE email = $1`, email)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete appointments by email", err)
	}
	return tag.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
