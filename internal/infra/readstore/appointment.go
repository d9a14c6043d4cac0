package readstore

import (
	"context"
	"strings"
	"time"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/infra"
	"booking-assistant/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appointmentColumns = `id, name, email, date, time, purpose, created_at`

// AppointmentReadStore serves the lookup side. Every listing comes back
// ordered by (date, time) ascending; the time column's canonical HH:MM makes
// its text order chronological.
type AppointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{pool: pool}
}

func (r *AppointmentReadStore) FindByEmail(ctx context.Context, email string) ([]*queries.AppointmentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE email = $1
		ORDER BY date, time
	`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointments by email", err)
	}
	return scanViews(rows)
}

func (r *AppointmentReadStore) FindByEmailAndDate(ctx context.Context, email string, date appointment.Date) ([]*queries.AppointmentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE email = $1 AND date = $2
		ORDER BY date, time
	`, email, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointments by email and date", err)
	}
	return scanViews(rows)
}

// FindUpcoming returns appointments on a later day than now, or later today.
// An empty email means all users.
func (r *AppointmentReadStore) FindUpcoming(ctx context.Context, email string, now time.Time) ([]*queries.AppointmentView, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	clock := now.Format("15:04")

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE (date > $1 OR (date = $1 AND time >= $2))
	`
	args := []any{today, clock}
	if email != "" {
		query += ` AND email = $3`
		args = append(args, email)
	}
	query += ` ORDER BY date, time`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find upcoming appointments", err)
	}
	return scanViews(rows)
}

func scanViews(rows pgx.Rows) ([]*queries.AppointmentView, error) {
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		var (
			v       queries.AppointmentView
			day     time.Time
			timeStr string
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &day, &timeStr, &v.Purpose, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		v.Date = day.Format(appointment.CanonicalDateLayout)
		v.Time = strings.TrimSpace(timeStr)
		views = append(views, &v)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", rows.Err())
	}
	return views, nil
}
