package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking-assistant/internal/pkg/errs"
	"booking-assistant/internal/usecase/queries"
)

// Notifier wires the confirmation collaborators behind the usecase port. Every
// failure here is a notification failure: logged and swallowed, never allowed
// to touch a committed booking or block the confirmation response.
type Notifier struct {
	email   *EmailSender
	meeting *MeetingCreator
	logger  *slog.Logger

	emailEnabled bool
}

func NewNotifier(email *EmailSender, meeting *MeetingCreator, emailEnabled bool, logger *slog.Logger) *Notifier {
	return &Notifier{
		email:        email,
		meeting:      meeting,
		logger:       logger,
		emailEnabled: emailEnabled,
	}
}

// BookingConfirmed creates the meeting link synchronously (short timeout) so
// it can ride along in the confirmation payload, then sends the email in the
// background.
func (n *Notifier) BookingConfirmed(ctx context.Context, appt *queries.AppointmentView) string {
	var joinURL string
	if n.meeting != nil && n.meeting.Enabled() {
		u, err := n.meeting.CreateMeeting(ctx, appt.Date, appt.Time, appt.Purpose)
		if err != nil {
			n.logger.Warn("meeting creation failed",
				"error", errs.Mark(err, errs.ErrNotificationFailure),
				"appointment_id", appt.ID)
		} else {
			joinURL = u
		}
	}

	if n.emailEnabled {
		go n.sendConfirmationEmail(appt, joinURL)
	}

	return joinURL
}

func (n *Notifier) BookingsCancelled(_ context.Context, email string, count int64) {
	if count == 0 || !n.emailEnabled {
		return
	}
	go func() {
		body := fmt.Sprintf("Your %d appointment(s) have been cancelled.", count)
		if err := n.email.Send(email, "Appointments cancelled", body); err != nil {
			n.logger.Warn("cancellation email failed",
				"error", errs.Mark(err, errs.ErrNotificationFailure),
				"email", email)
		}
	}()
}

func (n *Notifier) sendConfirmationEmail(appt *queries.AppointmentView, joinURL string) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour appointment is confirmed for %s at %s.\r\nPurpose: %s\r\nBooked at: %s\r\n",
		appt.Name, appt.Date, appt.Time, appt.Purpose, appt.CreatedAt.Format(time.RFC1123),
	)
	if joinURL != "" {
		body += "Join link: " + joinURL + "\r\n"
	}

	if err := n.email.Send(appt.Email, "Appointment confirmation", body); err != nil {
		n.logger.Warn("confirmation email failed",
			"error", errs.Mark(err, errs.ErrNotificationFailure),
			"appointment_id", appt.ID)
	}
}
