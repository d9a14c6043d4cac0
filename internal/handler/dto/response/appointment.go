package response

import (
	"time"

	"booking-assistant/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type CancelResponse struct {
	Email     string `json:"email"`
	Cancelled int64  `json:"cancelled"`
}

func FromAppointmentView(view *queries.AppointmentView) AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, view)
	return resp
}

func FromAppointmentViews(views []*queries.AppointmentView) AppointmentListResponse {
	resp := AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(views)),
	}
	for _, v := range views {
		resp.Appointments = append(resp.Appointments, FromAppointmentView(v))
	}
	return resp
}
