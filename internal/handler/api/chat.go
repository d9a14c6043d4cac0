package api

import (
	"net/http"

	reqdto "booking-assistant/internal/handler/dto/request"
	resdto "booking-assistant/internal/handler/dto/response"
	"booking-assistant/internal/handler/httperr"
	"booking-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	dialogue usecase.DialogueUseCase
}

func NewChatHandler(dialogue usecase.DialogueUseCase) *ChatHandler {
	return &ChatHandler{dialogue: dialogue}
}

// @Summary Process one conversation turn
// @Description Advance the booking dialogue by a single user message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Chat turn"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) ProcessTurn(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.dialogue.ProcessTurn(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTurnResult(result))
}
