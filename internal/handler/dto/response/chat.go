package response

import (
	"booking-assistant/internal/usecase"
)

type ChatResponse struct {
	Reply string       `json:"reply"`
	State string       `json:"state"`
	Slots SlotSnapshot `json:"slots"`
}

type SlotSnapshot struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

func FromTurnResult(result *usecase.TurnResult) ChatResponse {
	return ChatResponse{
		Reply: result.Prompt,
		State: result.State.String(),
		Slots: SlotSnapshot{
			Name:    result.Slots.Name,
			Email:   result.Slots.Email,
			Date:    result.Slots.Date,
			Time:    result.Slots.Time,
			Purpose: result.Slots.Purpose,
		},
	}
}
