package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"wadi/internal/models/request_models"
	"wadi/internal/models/response_models"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == "" {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	answer, err := ch.chatService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatResponse{Response: answer}, "Chat answered successfully")
}
