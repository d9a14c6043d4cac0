//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"time"

	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/handler"
	"booking-assistant/internal/handler/api"
	resdto "booking-assistant/internal/handler/dto/response"
	"booking-assistant/internal/pkg/clock"
	"booking-assistant/internal/pkg/config"
	"booking-assistant/internal/usecase"
	"booking-assistant/internal/usecase/commands"
	"booking-assistant/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDialogue struct {
	result    *usecase.TurnResult
	err       error
	sessionID string
	text      string
}

func (s *stubDialogue) ProcessTurn(_ context.Context, sessionID, text string) (*usecase.TurnResult, error) {
	s.sessionID = sessionID
	s.text = text
	return s.result, s.err
}

// newTestRouter assembles the real router, middleware chain included, so
// handler tests exercise the same error pipeline the server runs.
func newTestRouter(dialogue usecase.DialogueUseCase, q queries.AppointmentQueries, cmds commands.BookingCommands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	clk := clock.NewMockClock(time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC))
	handler.NewRouter(engine, config.NewTestConfig(), api.NewChatHandler(dialogue), api.NewAppointmentHandler(q, cmds, clk))
	return engine
}

func newChatRouter(dialogue usecase.DialogueUseCase) *gin.Engine {
	return newTestRouter(dialogue, &stubQueries{}, &stubCommands{})
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChatHandler_ProcessTurn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		dialogue := &stubDialogue{
			result: &usecase.TurnResult{
				Prompt: "What's your name?",
				State:  conversation.StateCollectingName,
			},
		}
		router := newChatRouter(dialogue)

		rec := postChat(t, router, `{"session_id":"s1","message":"book an appointment"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "s1", dialogue.sessionID)
		assert.Equal(t, "book an appointment", dialogue.text)

		var body resdto.ChatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "What's your name?", body.Reply)
		assert.Equal(t, "collecting_name", body.State)
	})

	t.Run("slots are echoed back", func(t *testing.T) {
		dialogue := &stubDialogue{
			result: &usecase.TurnResult{
				Prompt: "What date works for you? (DD/MM/YYYY)",
				State:  conversation.StateCollectingDate,
			},
		}
		dialogue.result.Slots.Name = "Sam"
		dialogue.result.Slots.Email = "sam@example.com"
		router := newChatRouter(dialogue)

		rec := postChat(t, router, `{"session_id":"s1","message":"sam@example.com"}`)

		var body resdto.ChatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Sam", body.Slots.Name)
		assert.Equal(t, "sam@example.com", body.Slots.Email)
	})

	t.Run("missing session id is a bad request", func(t *testing.T) {
		router := newChatRouter(&stubDialogue{})

		rec := postChat(t, router, `{"message":"hello"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		router := newChatRouter(&stubDialogue{})

		rec := postChat(t, router, `{"session_id":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("dialogue failure is an internal error", func(t *testing.T) {
		router := newChatRouter(&stubDialogue{err: errors.New("session store down")})

		rec := postChat(t, router, `{"session_id":"s1","message":"hello"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}
