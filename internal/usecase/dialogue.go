package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/pkg/clock"
	"booking-assistant/internal/pkg/errs"
	"booking-assistant/internal/usecase/commands"
	"booking-assistant/internal/usecase/queries"
)

// SessionStore persists conversation sessions between turns. Load returns
// errs.ErrSessionNotFound for an unknown id; the dialogue then starts a fresh
// session under that id.
type SessionStore interface {
	Load(ctx context.Context, id string) (*conversation.Session, error)
	Save(ctx context.Context, session *conversation.Session) error
}

// TurnResult is what a front end gets back for one user turn.
type TurnResult struct {
	Prompt string
	State  conversation.State
	Slots  appointment.BookingInfo
}

type DialogueUseCase interface {
	ProcessTurn(ctx context.Context, sessionID, text string) (*TurnResult, error)
}

type dialogueUseCaseImpl struct {
	sessions   SessionStore
	classifier *conversation.Classifier
	extractor  *conversation.Extractor
	booking    commands.BookingCommands
	queries    queries.AppointmentQueries
	clock      clock.Clock
	logger     *slog.Logger

	// turnLocks serializes turns per session: a turn, commit included, runs to
	// completion before the next one for the same session is accepted. Entries
	// are never evicted, so one mutex per distinct session id accumulates for
	// the life of the process.
	// TODO: evict the mutex when the session's Redis TTL expires.
	turnLocks sync.Map // sessionID -> *sync.Mutex
}

func NewDialogueUseCase(
	sessions SessionStore,
	classifier *conversation.Classifier,
	extractor *conversation.Extractor,
	booking commands.BookingCommands,
	appointmentQueries queries.AppointmentQueries,
	clock clock.Clock,
	logger *slog.Logger,
) DialogueUseCase {
	return &dialogueUseCaseImpl{
		sessions:   sessions,
		classifier: classifier,
		extractor:  extractor,
		booking:    booking,
		queries:    appointmentQueries,
		clock:      clock,
		logger:     logger,
	}
}

func (d *dialogueUseCaseImpl) ProcessTurn(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	lock, _ := d.turnLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	session, err := d.sessions.Load(ctx, sessionID)
	if err != nil {
		if !errs.Is(err, errs.ErrSessionNotFound) {
			return nil, errs.Wrap(err, "failed to load session")
		}
		session = conversation.NewSession(sessionID)
	}

	prompt := d.advance(ctx, session, strings.TrimSpace(text))

	session.UpdatedAt = d.clock.Now()
	if err := d.sessions.Save(ctx, session); err != nil {
		return nil, errs.Wrap(err, "failed to save session")
	}

	return &TurnResult{
		Prompt: prompt,
		State:  session.State,
		Slots:  session.Slots,
	}, nil
}

// advance runs exactly one transition and returns the next prompt.
func (d *dialogueUseCaseImpl) advance(ctx context.Context, session *conversation.Session, text string) string {
	switch {
	case session.State.IsCollecting():
		return d.collectField(ctx, session, text)
	case session.State == conversation.StateDuplicateConflict:
		return d.resolveConflict(ctx, session, text)
	case session.State == conversation.StateError:
		return d.resolveError(ctx, session, text)
	default:
		// idle and confirmed both take a fresh intent
		return d.dispatchIntent(ctx, session, text)
	}
}

func (d *dialogueUseCaseImpl) dispatchIntent(ctx context.Context, session *conversation.Session, text string) string {
	intent := d.classifier.Classify(ctx, text)

	switch intent {
	case conversation.IntentBook:
		return d.startBooking(ctx, session, text)
	case conversation.IntentCheck:
		session.State = conversation.StateIdle
		return d.checkAppointments(ctx, text)
	case conversation.IntentCancel:
		session.State = conversation.StateIdle
		return d.cancelAppointments(ctx, text)
	default:
		session.State = conversation.StateIdle
		return "I can book an appointment, check your existing ones, or cancel them. What would you like to do?"
	}
}

// startBooking seeds the slots from whatever the opening message already
// contains, then routes to the earliest missing field, or straight to commit
// when one turn supplied everything.
func (d *dialogueUseCaseImpl) startBooking(ctx context.Context, session *conversation.Session, text string) string {
	session.Slots = appointment.BookingInfo{}
	session.MergeSlots(d.extractor.Extract(text, d.clock.Now()))

	if field, ok := session.FirstMissing(); ok {
		session.State = conversation.CollectingStateFor(field)
		return promptFor(field)
	}
	return d.commit(ctx, session)
}

// collectField validates exactly the field owned by the current state. On
// failure the state does not move and earlier slots are untouched.
func (d *dialogueUseCaseImpl) collectField(ctx context.Context, session *conversation.Session, text string) string {
	field, ok := conversation.FieldFor(session.State)
	if !ok {
		session.Reset()
		return "Let's start over. What would you like to do?"
	}

	if err := appointment.ValidateField(field, text, d.clock.Now()); err != nil {
		return rejectionFor(field)
	}
	session.Slots.Set(field, appointment.NormalizeField(field, text))

	if next, missing := session.FirstMissing(); missing {
		session.State = conversation.CollectingStateFor(next)
		return promptFor(next)
	}
	return d.commit(ctx, session)
}

// commit re-validates the full slot set against the current clock before
// inserting. A date accepted several turns ago may have slipped into the past
// by now; re-validation routes back instead of persisting a stale booking.
func (d *dialogueUseCaseImpl) commit(ctx context.Context, session *conversation.Session) string {
	missing, invalid := session.Slots.Validate(d.clock.Now())
	if field, reason, offending := earliestOffending(missing, invalid); offending {
		session.Slots.Clear(field)
		session.State = conversation.CollectingStateFor(field)
		if reason == offendingMissing {
			return promptFor(field)
		}
		return rejectionFor(field)
	}

	result, err := d.booking.Book(ctx, session.Slots)
	switch {
	case err == nil:
		confirmation := confirmationMessage(result)
		session.Slots = appointment.BookingInfo{}
		session.State = conversation.StateConfirmed
		return confirmation

	case errs.Is(err, errs.ErrDuplicateBooking):
		session.State = conversation.StateDuplicateConflict
		return fmt.Sprintf(
			"You already have an appointment on %s at %s. Would you like to pick a different date or time, view your bookings, or cancel this request?",
			appointment.NormalizeField(appointment.FieldDate, session.Slots.Date),
			appointment.NormalizeField(appointment.FieldTime, session.Slots.Time),
		)

	default:
		d.logger.Error("booking commit failed", "session_id", session.ID, "error", err)
		session.State = conversation.StateError
		return "I couldn't save your appointment just now. Your details are kept - say 'retry' to try again or 'cancel' to abandon."
	}
}

// resolveConflict handles the duplicate-booking sub-dialogue.
func (d *dialogueUseCaseImpl) resolveConflict(ctx context.Context, session *conversation.Session, text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "different", "another", "change", "reschedule", "new date", "new time"):
		session.Slots.Clear(appointment.FieldDate, appointment.FieldTime)
		session.State = conversation.StateCollectingDate
		return promptFor(appointment.FieldDate)

	case containsAny(lower, "view", "show", "see", "list"):
		return d.listForEmail(ctx, session.Slots.Email)

	case containsAny(lower, "cancel", "abandon", "stop", "no"):
		session.Reset()
		return "Okay, I've dropped that booking request. Anything else?"

	default:
		return "Please choose: a different date or time, view your bookings, or cancel this request."
	}
}

// resolveError handles the retry-or-abandon choice after a persistence
// failure. The collected slots stay put so nothing has to be re-entered.
func (d *dialogueUseCaseImpl) resolveError(ctx context.Context, session *conversation.Session, text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "retry", "try again", "again", "yes"):
		return d.commit(ctx, session)

	case containsAny(lower, "cancel", "abandon", "stop", "no"):
		session.Reset()
		return "Okay, I've dropped that booking request. Anything else?"

	default:
		return "Say 'retry' to try saving again or 'cancel' to abandon the booking."
	}
}

// checkAppointments answers a lookup in a single turn; it needs an email in
// the message to know whose bookings to read.
func (d *dialogueUseCaseImpl) checkAppointments(ctx context.Context, text string) string {
	email, ok := d.extractor.ExtractEmail(text)
	if !ok {
		return "Sure - include the email address you booked with and I'll look it up."
	}

	now := d.clock.Now()
	lower := strings.ToLower(text)

	if containsAny(lower, "next", "upcoming") {
		next, err := d.queries.NextUpcoming(ctx, email, now)
		if err != nil {
			d.logger.Error("upcoming lookup failed", "error", err)
			return "I couldn't look that up right now, please try again."
		}
		if next == nil {
			return "You don't have any upcoming appointments."
		}
		return fmt.Sprintf("Your next appointment is on %s at %s (%s).", next.Date, next.Time, next.Purpose)
	}

	if dateRef := d.extractor.Extract(text, now).Date; dateRef != "" {
		matches, err := d.queries.ListByEmailAndDate(ctx, email, dateRef)
		if err != nil {
			d.logger.Error("dated lookup failed", "error", err)
			return "I couldn't look that up right now, please try again."
		}
		if len(matches) == 0 {
			return fmt.Sprintf("No appointments found for %s on %s.", email, dateRef)
		}
		return formatAppointments(matches)
	}

	return d.listForEmail(ctx, email)
}

func (d *dialogueUseCaseImpl) listForEmail(ctx context.Context, email string) string {
	matches, err := d.queries.ListByEmail(ctx, email)
	if err != nil {
		d.logger.Error("lookup failed", "error", err)
		return "I couldn't look that up right now, please try again."
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No appointments found for %s.", email)
	}
	return formatAppointments(matches)
}

// cancelAppointments removes everything booked under an email in one
// all-or-nothing operation. Removing nothing is still a success.
func (d *dialogueUseCaseImpl) cancelAppointments(ctx context.Context, text string) string {
	email, ok := d.extractor.ExtractEmail(text)
	if !ok {
		return "To cancel, include the email address you booked with."
	}

	count, err := d.booking.CancelByEmail(ctx, email)
	if err != nil {
		d.logger.Error("cancellation failed", "email", email, "error", err)
		return "I couldn't cancel right now, please try again."
	}
	if count == 0 {
		return fmt.Sprintf("There were no appointments to cancel for %s.", email)
	}
	return fmt.Sprintf("Cancelled %d appointment(s) for %s.", count, email)
}

type offendingReason int

const (
	offendingMissing offendingReason = iota
	offendingInvalid
)

// earliestOffending picks the first field, in collection order, that the full
// re-validation flagged.
func earliestOffending(missing, invalid []appointment.Field) (appointment.Field, offendingReason, bool) {
	missingSet := fieldSet(missing)
	invalidSet := fieldSet(invalid)
	for _, f := range appointment.RequiredFields {
		if missingSet[f] {
			return f, offendingMissing, true
		}
		if invalidSet[f] {
			return f, offendingInvalid, true
		}
	}
	return "", offendingMissing, false
}

func fieldSet(fields []appointment.Field) map[appointment.Field]bool {
	set := make(map[appointment.Field]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// containsAny matches multi-word phrases as substrings and single words as
// whole tokens, so "no" does not fire inside "know" or "yes" inside
// "yesterday".
func containsAny(text string, phrases ...string) bool {
	var tokens []string
	for _, p := range phrases {
		if strings.ContainsRune(p, ' ') {
			if strings.Contains(text, p) {
				return true
			}
			continue
		}
		if tokens == nil {
			tokens = strings.FieldsFunc(text, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
		}
		if slices.Contains(tokens, p) {
			return true
		}
	}
	return false
}

func confirmationMessage(result *commands.BookResult) string {
	appt := result.Appointment
	msg := fmt.Sprintf(
		"All set, %s! Your appointment for %s is booked on %s at %s. A confirmation goes to %s.",
		appt.Name, appt.Purpose, appt.Date, appt.Time, appt.Email,
	)
	if result.JoinURL != "" {
		msg += " Join link: " + result.JoinURL
	}
	return msg
}

func formatAppointments(views []*queries.AppointmentView) string {
	var sb strings.Builder
	sb.WriteString("Here's what I found:\n")
	for i, v := range views {
		fmt.Fprintf(&sb, "%d. %s at %s - %s\n", i+1, v.Date, v.Time, v.Purpose)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func promptFor(f appointment.Field) string {
	switch f {
	case appointment.FieldName:
		return "What's your name?"
	case appointment.FieldEmail:
		return "What email address should the confirmation go to?"
	case appointment.FieldDate:
		return "What date works for you? (DD/MM/YYYY)"
	case appointment.FieldTime:
		return "What time works for you? (e.g. 14:30 or 2:30 PM)"
	case appointment.FieldPurpose:
		return "What is the appointment about?"
	default:
		return "Could you tell me a bit more?"
	}
}

func rejectionFor(f appointment.Field) string {
	switch f {
	case appointment.FieldName:
		return "I didn't catch a name there. What should I call you?"
	case appointment.FieldEmail:
		return "That doesn't look like a valid email address (expected something like name@example.com). What's your email?"
	case appointment.FieldDate:
		return "I couldn't use that date. Please give a date like 25/12/2030 that isn't in the past."
	case appointment.FieldTime:
		return "I couldn't read that time. Try 14:30, 2:30 PM, or 2 PM."
	case appointment.FieldPurpose:
		return "I need a short note on what the appointment is for. What's it about?"
	default:
		return "Sorry, I couldn't use that. Could you rephrase?"
	}
}
