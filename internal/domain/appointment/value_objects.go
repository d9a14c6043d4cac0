package appointment

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidDate  = errors.New("invalid or past date")
	ErrInvalidTime  = errors.New("invalid time format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrMissingField
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// CanonicalDateLayout is how dates are rendered everywhere user-facing.
const CanonicalDateLayout = "02/01/2006"

var dateLayouts = []string{
	CanonicalDateLayout,
	"2006-01-02",
	"02-01-2006",
}

type Date struct {
	value time.Time
}

func NewDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{value: t}, nil
		}
	}
	return Date{}, ErrInvalidDate
}

func DateFromTime(t time.Time) Date {
	return Date{value: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time {
	return d.value
}

func (d Date) String() string {
	return d.value.Format(CanonicalDateLayout)
}

// Before reports whether the date falls strictly before the calendar day of ref.
func (d Date) Before(ref time.Time) bool {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return d.value.Before(day)
}

var clockTimeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
var meridiemTimeRegex = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)

// TimeOfDay is a wall-clock time canonicalized to 24-hour HH:MM.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay accepts 24-hour "HH:MM", 12-hour "H:MM AM/PM", and bare
// "H AM/PM" (including "2PM"). Normalization is idempotent: canonical input
// parses back to itself.
func NewTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)

	if m := meridiemTimeRegex.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return TimeOfDay{}, ErrInvalidTime
		}
		meridiem := strings.ToUpper(m[3])
		if meridiem == "PM" && hour < 12 {
			hour += 12
		} else if meridiem == "AM" && hour == 12 {
			hour = 0
		}
		return TimeOfDay{hour: hour, minute: minute}, nil
	}

	if m := clockTimeRegex.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return TimeOfDay{}, ErrInvalidTime
		}
		return TimeOfDay{hour: hour, minute: minute}, nil
	}

	return TimeOfDay{}, ErrInvalidTime
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

type Purpose struct {
	value string
}

func NewPurpose(s string) (Purpose, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Purpose{}, ErrMissingField
	}
	return Purpose{value: s}, nil
}

func (p Purpose) Value() string {
	return p.value
}
