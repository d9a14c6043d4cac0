package api

import (
	"errors"
	"net/http"

	"booking-assistant/internal/domain/appointment"
	reqdto "booking-assistant/internal/handler/dto/request"
	resdto "booking-assistant/internal/handler/dto/response"
	"booking-assistant/internal/handler/httperr"
	"booking-assistant/internal/pkg/clock"
	"booking-assistant/internal/usecase/commands"
	"booking-assistant/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentQueries queries.AppointmentQueries
	bookingCommands    commands.BookingCommands
	clock              clock.Clock
}

func NewAppointmentHandler(
	appointmentQueries queries.AppointmentQueries,
	bookingCommands commands.BookingCommands,
	clock clock.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentQueries: appointmentQueries,
		bookingCommands:    bookingCommands,
		clock:              clock,
	}
}

// @Summary List appointments
// @Description List appointments for an email, optionally filtered by date or restricted to upcoming ones
// @Tags appointments
// @Produce json
// @Param email query string true "Email the appointments were booked with"
// @Param date query string false "Filter by date (DD/MM/YYYY)"
// @Param upcoming query bool false "Only future appointments"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var req reqdto.ListAppointmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid email query parameter is required", nil)
		return
	}

	var (
		views []*queries.AppointmentView
		err   error
	)
	switch {
	case req.Upcoming:
		views, err = h.appointmentQueries.ListUpcoming(c.Request.Context(), req.Email, h.clock.Now())
	case req.Date != "":
		views, err = h.appointmentQueries.ListByEmailAndDate(c.Request.Context(), req.Email, req.Date)
	default:
		views, err = h.appointmentQueries.ListByEmail(c.Request.Context(), req.Email)
	}
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
		case errors.Is(err, appointment.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected DD/MM/YYYY", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Cancel appointments
// @Description Remove every appointment booked with the given email
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CancelAppointmentsRequest true "Cancellation request"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} map[string]string
// @Router /appointments [delete]
func (h *AppointmentHandler) CancelAppointments(c *gin.Context) {
	var req reqdto.CancelAppointmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid email is required", nil)
		return
	}

	count, err := h.bookingCommands.CancelByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, appointment.ErrInvalidEmail) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CancelResponse{
		Email:     req.Email,
		Cancelled: count,
	})
}
