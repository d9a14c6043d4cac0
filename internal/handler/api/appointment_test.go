//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booking-assistant/internal/domain/appointment"
	resdto "booking-assistant/internal/handler/dto/response"
	"booking-assistant/internal/usecase/commands"
	"booking-assistant/internal/usecase/queries"
	"booking-assistant/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQueries struct {
	views   []*queries.AppointmentView
	err     error
	upcall  bool
	bydate  string
	byemail string
}

func (s *stubQueries) ListByEmail(_ context.Context, email string) ([]*queries.AppointmentView, error) {
	if _, err := appointment.NewEmail(email); err != nil {
		return nil, err
	}
	s.byemail = email
	return s.views, s.err
}

func (s *stubQueries) ListByEmailAndDate(_ context.Context, email, date string) ([]*queries.AppointmentView, error) {
	if _, err := appointment.NewDate(date); err != nil {
		return nil, err
	}
	s.bydate = date
	return s.views, s.err
}

func (s *stubQueries) ListUpcoming(_ context.Context, email string, _ time.Time) ([]*queries.AppointmentView, error) {
	s.upcall = true
	return s.views, s.err
}

func (s *stubQueries) NextUpcoming(_ context.Context, _ string, _ time.Time) (*queries.AppointmentView, error) {
	if len(s.views) == 0 {
		return nil, nil
	}
	return s.views[0], nil
}

type stubCommands struct {
	count int64
	err   error
}

func (s *stubCommands) Book(_ context.Context, _ appointment.BookingInfo) (*commands.BookResult, error) {
	return nil, nil
}

func (s *stubCommands) CancelByEmail(_ context.Context, email string) (int64, error) {
	if _, err := appointment.NewEmail(email); err != nil {
		return 0, err
	}
	return s.count, s.err
}

func newAppointmentRouter(q queries.AppointmentQueries, cmds commands.BookingCommands) *gin.Engine {
	return newTestRouter(&stubDialogue{}, q, cmds)
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	t.Run("lists by email", func(t *testing.T) {
		q := &stubQueries{views: []*queries.AppointmentView{builder.NewBookingBuilder().BuildView()}}
		router := newAppointmentRouter(q, &stubCommands{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/appointments?email=sam@example.com", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body resdto.AppointmentListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Appointments, 1)
		assert.Equal(t, "25/12/2030", body.Appointments[0].Date)
		assert.Equal(t, "sam@example.com", q.byemail)
	})

	t.Run("date filter routes to the dated lookup", func(t *testing.T) {
		q := &stubQueries{}
		router := newAppointmentRouter(q, &stubCommands{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/appointments?email=sam@example.com&date=25/12/2030", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "25/12/2030", q.bydate)
	})

	t.Run("upcoming flag routes to the upcoming lookup", func(t *testing.T) {
		q := &stubQueries{}
		router := newAppointmentRouter(q, &stubCommands{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/appointments?email=sam@example.com&upcoming=true", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, q.upcall)
	})

	t.Run("missing email is a bad request", func(t *testing.T) {
		router := newAppointmentRouter(&stubQueries{}, &stubCommands{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date is a bad request", func(t *testing.T) {
		router := newAppointmentRouter(&stubQueries{}, &stubCommands{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/appointments?email=sam@example.com&date=someday", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid date, expected DD/MM/YYYY", body.Error.Message)
	})
}

func TestAppointmentHandler_CancelAppointments(t *testing.T) {
	t.Run("reports the cancelled count", func(t *testing.T) {
		router := newAppointmentRouter(&stubQueries{}, &stubCommands{count: 2})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/appointments",
			strings.NewReader(`{"email":"sam@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body resdto.CancelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(2), body.Cancelled)
		assert.Equal(t, "sam@example.com", body.Email)
	})

	t.Run("missing email is a bad request", func(t *testing.T) {
		router := newAppointmentRouter(&stubQueries{}, &stubCommands{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/appointments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
