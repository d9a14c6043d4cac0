package conversation

import (
	"regexp"
	"strings"
	"time"

	"booking-assistant/internal/domain/appointment"
)

// Extractor opportunistically pulls booking slots out of free text so a single
// turn can fill several fields at once. Extracted values feed the same slot
// structure as sequential collection and go through the same re-validation
// pass before commit, so extraction never has to be perfect, only plausible.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+\-]+@[a-zA-Z0-9\-]+\.[a-zA-Z0-9\-.]+`)
	namePattern  = regexp.MustCompile(`(?i)(?:my name is|i am|i'm|this is|name[:\s]\s*)\s*([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`)
	timePattern  = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:am|pm)?|\d{1,2}\s*(?:am|pm))\b`)
	datePattern  = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{4}|\d{4}-\d{2}-\d{2})\b`)

	purposePattern = regexp.MustCompile(`(?i)(?:purpose[:\s]\s*|regarding\s+|about\s+)([^.,\n]+)`)

	nameStopWords = map[string]bool{"and": true, "my": true, "on": true, "at": true, "for": true}
)

// Extract returns whatever slots it could recognize in text. now anchors the
// relative date references (today, tomorrow, next week).
func (e *Extractor) Extract(text string, now time.Time) appointment.BookingInfo {
	var info appointment.BookingInfo

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if m := namePattern.FindStringSubmatch(text); m != nil {
		info.Name = cleanName(m[1])
	}
	if m := timePattern.FindStringSubmatch(text); m != nil {
		info.Time = strings.TrimSpace(m[1])
	}
	if m := datePattern.FindStringSubmatch(text); m != nil {
		info.Date = m[1]
	} else if d, ok := relativeDate(text, now); ok {
		info.Date = d
	}
	if m := purposePattern.FindStringSubmatch(text); m != nil {
		info.Purpose = strings.TrimSpace(m[1])
	}

	return info
}

// ExtractEmail is the single-field variant used by the check and cancel paths.
func (e *Extractor) ExtractEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}

// cleanName cuts the captured name at the first connective so greedy captures
// like "Sam and" come back as just "Sam".
func cleanName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if nameStopWords[strings.ToLower(w)] {
			words = words[:i]
			break
		}
	}
	return strings.Join(words, " ")
}

// relativeDate resolves spoken date references against the calendar day of now.
func relativeDate(text string, now time.Time) (string, bool) {
	lower := strings.ToLower(text)

	var day time.Time
	switch {
	case strings.Contains(lower, "day after tomorrow"):
		day = now.AddDate(0, 0, 2)
	case strings.Contains(lower, "tomorrow"):
		day = now.AddDate(0, 0, 1)
	case strings.Contains(lower, "next week"):
		day = now.AddDate(0, 0, 7)
	case strings.Contains(lower, "today"):
		day = now
	default:
		return "", false
	}
	return day.Format(appointment.CanonicalDateLayout), true
}
