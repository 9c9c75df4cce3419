package controllers

import (
	"errors"
	"net/http"

	"eyenova-backend/models"
	"eyenova-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageController struct {
	messageService *services.MessageService
	userService    *services.UserService
}

func NewMessageController(messageService *services.MessageService, userService *services.UserService) *MessageController {
	return &MessageController{
		messageService: messageService,
		userService:    userService,
	}
}

// canMessage enforces the patient/doctor link: a patient may only message
// their linked doctor and a doctor only their linked patients.
func canMessage(sender, recipient *models.User) bool {
	switch sender.Role {
	case models.RolePatient:
		return sender.LinkedDoctorID != nil && *sender.LinkedDoctorID == recipient.ID
	case models.RoleDoctor:
		return recipient.LinkedDoctorID != nil && *recipient.LinkedDoctorID == sender.ID
	}
	return false
}

// Send delivers a direct message to the linked doctor or patient.
func (mc *MessageController) Send(c *gin.Context) {
	me := currentUser(c)

	var req models.DirectMessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	recipientID, err := primitive.ObjectIDFromHex(req.RecipientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient id"})
		return
	}

	recipient, err := mc.userService.GetByID(c.Request.Context(), recipientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		return
	}
	if !canMessage(me, recipient) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only message your linked doctor or patients"})
		return
	}

	msg, err := mc.messageService.Send(c.Request.Context(), me.ID, recipient.ID, req.MessageText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// Conversation returns the visible messages between the authenticated user
// and another user, oldest first.
func (mc *MessageController) Conversation(c *gin.Context) {
	me := currentUser(c)

	otherID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	messages, err := mc.messageService.ConversationBetween(c.Request.Context(), me.ID, otherID, me.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// Partners lists everyone the user can chat with.
func (mc *MessageController) Partners(c *gin.Context) {
	me := currentUser(c)

	partners, err := mc.messageService.ConversationPartners(c.Request.Context(), me)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partners": partners,
		"count":    len(partners),
	})
}

// Delete removes a message either just for the requester or, when
// mode=everyone and the requester is the sender, for both sides.
func (mc *MessageController) Delete(c *gin.Context) {
	me := currentUser(c)

	messageID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	mode := c.DefaultQuery("mode", "me")
	switch mode {
	case "me":
		err = mc.messageService.DeleteForMe(c.Request.Context(), messageID, me.ID)
	case "everyone":
		err = mc.messageService.DeleteForEveryone(c.Request.Context(), messageID, me.ID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be me or everyone"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, services.ErrNotMessageSender):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the sender can delete for everyone"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
