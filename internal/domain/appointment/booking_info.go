package appointment

import (
	"strings"
	"time"
)

// BookingInfo is the partial slot mapping a conversation builds up turn by
// turn. Values are raw-but-accepted user input; the entity constructor is the
// only place a full record is assembled from it.
type BookingInfo struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

func (b BookingInfo) Get(f Field) string {
	switch f {
	case FieldName:
		return b.Name
	case FieldEmail:
		return b.Email
	case FieldDate:
		return b.Date
	case FieldTime:
		return b.Time
	case FieldPurpose:
		return b.Purpose
	default:
		return ""
	}
}

func (b *BookingInfo) Set(f Field, value string) {
	switch f {
	case FieldName:
		b.Name = value
	case FieldEmail:
		b.Email = value
	case FieldDate:
		b.Date = value
	case FieldTime:
		b.Time = value
	case FieldPurpose:
		b.Purpose = value
	}
}

func (b *BookingInfo) Clear(fields ...Field) {
	for _, f := range fields {
		b.Set(f, "")
	}
}

func (b BookingInfo) IsComplete() bool {
	for _, f := range RequiredFields {
		if strings.TrimSpace(b.Get(f)) == "" {
			return false
		}
	}
	return true
}

// Validate splits the required fields into absent ones and present-but-invalid
// ones, evaluated independently. A field appears in at most one of the two
// returned slices. Dates are checked for feasibility against now, so a value
// accepted on an earlier turn can still come back invalid here.
func (b BookingInfo) Validate(now time.Time) (missing []Field, invalid []Field) {
	for _, f := range RequiredFields {
		raw := strings.TrimSpace(b.Get(f))
		if raw == "" {
			missing = append(missing, f)
			continue
		}
		if err := ValidateField(f, raw, now); err != nil {
			invalid = append(invalid, f)
		}
	}
	return missing, invalid
}

// NormalizeField canonicalizes an already-validated slot value: dates become
// DD/MM/YYYY, times become 24-hour HH:MM, everything else is trimmed.
// Normalizing a canonical value returns it unchanged.
func NormalizeField(f Field, raw string) string {
	raw = strings.TrimSpace(raw)
	switch f {
	case FieldDate:
		if d, err := NewDate(raw); err == nil {
			return d.String()
		}
	case FieldTime:
		if t, err := NewTimeOfDay(raw); err == nil {
			return t.String()
		}
	}
	return raw
}

// ValidateField checks a single raw slot value; the dialogue uses it to accept
// or re-prompt one field per turn.
func ValidateField(f Field, raw string, now time.Time) error {
	switch f {
	case FieldName:
		_, err := NewName(raw)
		return err
	case FieldEmail:
		_, err := NewEmail(raw)
		return err
	case FieldDate:
		d, err := NewDate(raw)
		if err != nil {
			return err
		}
		if d.Before(now) {
			return ErrInvalidDate
		}
		return nil
	case FieldTime:
		_, err := NewTimeOfDay(raw)
		return err
	case FieldPurpose:
		_, err := NewPurpose(raw)
		return err
	default:
		return nil
	}
}
