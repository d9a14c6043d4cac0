package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booking-assistant/internal/domain/appointment"
	"booking-assistant/internal/pkg/config"
	"booking-assistant/internal/pkg/errs"
)

// MeetingCreator creates a video-meeting for a confirmed appointment through a
// Zoom-style server-to-server OAuth API and returns the join URL.
type MeetingCreator struct {
	cfg    config.MeetingConfig
	client *http.Client
}

func NewMeetingCreator(cfg config.MeetingConfig) *MeetingCreator {
	return &MeetingCreator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether credentials are configured.
func (m *MeetingCreator) Enabled() bool {
	return m.cfg.AccountID != "" && m.cfg.ClientID != "" && m.cfg.ClientSecret != ""
}

// CreateMeeting schedules a 30-minute meeting at the appointment's date and
// time and returns the join URL.
func (m *MeetingCreator) CreateMeeting(ctx context.Context, date, timeOfDay, purpose string) (string, error) {
	token, err := m.accessToken(ctx)
	if err != nil {
		return "", err
	}

	start, err := time.Parse(appointment.CanonicalDateLayout+" 15:04", date+" "+timeOfDay)
	if err != nil {
		return "", errs.Wrap(err, "failed to build meeting start time")
	}

	body, err := json.Marshal(map[string]any{
		"topic":      "Appointment: " + purpose,
		"type":       2, // scheduled meeting
		"start_time": start.Format("2006-01-02T15:04:05Z"),
		"duration":   30,
		"timezone":   "UTC",
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode meeting request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIBaseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build meeting request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "meeting API request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.New(fmt.Sprintf("meeting API returned status %d", resp.StatusCode))
	}

	var meeting struct {
		JoinURL string `json:"join_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return "", errs.Wrap(err, "failed to decode meeting response")
	}
	return meeting.JoinURL, nil
}

func (m *MeetingCreator) accessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {m.cfg.AccountID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(m.cfg.ClientID, m.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("token endpoint returned status %d", resp.StatusCode))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	return token.AccessToken, nil
}
