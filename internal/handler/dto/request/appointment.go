package request

type ListAppointmentsRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Date     string `form:"date"`
	Upcoming bool   `form:"upcoming"`
}

type CancelAppointmentsRequest struct {
	Email string `json:"email" binding:"required,email"`
}
