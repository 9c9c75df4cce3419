package controllers

import (
	"log"
	"net/http"

	"eyenova-backend/assistant"
	"eyenova-backend/models"
	"eyenova-backend/services"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	assistant *assistant.Assistant
	chatLog   *services.ChatLogService
}

func NewAssistantController(a *assistant.Assistant, chatLog *services.ChatLogService) *AssistantController {
	return &AssistantController{
		assistant: a,
		chatLog:   chatLog,
	}
}

// Chat answers one assistant message. When the caller is authenticated both
// sides of the exchange are recorded in the patient's chat log; anonymous
// callers just get the reply.
func (ac *AssistantController) Chat(c *gin.Context) {
	me := currentUser(c)

	var req models.AIChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	patientName := req.PatientName
	sessionID := req.SessionID
	if me != nil {
		if patientName == "" {
			patientName = me.FullName
		}
		if sessionID == "" {
			sessionID = me.ID.Hex()
		}
	}

	reply := ac.assistant.Reply(req.Message, patientName, sessionID)

	if me != nil {
		session, err := ac.chatLog.SessionFor(c.Request.Context(), me.ID, me.FullName)
		if err != nil {
			log.Println("Chat log error:", err)
		} else {
			if _, err := ac.chatLog.AppendMessage(c.Request.Context(), session.ID, "patient", req.Message); err != nil {
				log.Println("Chat log error:", err)
			}
			if _, err := ac.chatLog.AppendMessage(c.Request.Context(), session.ID, "ai", reply); err != nil {
				log.Println("Chat log error:", err)
			}
		}
	}

	c.JSON(http.StatusOK, models.AIChatResponse{Reply: reply})
}

// History returns the patient's persisted assistant conversation.
func (ac *AssistantController) History(c *gin.Context) {
	me := currentUser(c)

	session, err := ac.chatLog.SessionFor(c.Request.Context(), me.ID, me.FullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat history"})
		return
	}

	messages, err := ac.chatLog.History(c.Request.Context(), session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"messages":   messages,
		"count":      len(messages),
	})
}
