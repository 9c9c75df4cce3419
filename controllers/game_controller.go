package controllers

import (
	"errors"
	"net/http"

	"eyenova-backend/models"
	"eyenova-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameController struct {
	gameService *services.GameService
	userService *services.UserService
}

func NewGameController(gameService *services.GameService, userService *services.UserService) *GameController {
	return &GameController{
		gameService: gameService,
		userService: userService,
	}
}

// Create records a finished game session for the authenticated patient.
func (gc *GameController) Create(c *gin.Context) {
	me := currentUser(c)
	if me.Role != models.RolePatient {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only patients can record game sessions"})
		return
	}

	var req models.GameSessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	session, err := gc.gameService.Create(c.Request.Context(), me.ID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidGameName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Game name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record game session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// MySessions lists the authenticated patient's game history, newest first.
func (gc *GameController) MySessions(c *gin.Context) {
	me := currentUser(c)

	sessions, err := gc.gameService.ForPatient(c.Request.Context(), me.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list game sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// PatientSessions lets a doctor view a linked patient's game history.
func (gc *GameController) PatientSessions(c *gin.Context) {
	patient, ok := gc.linkedPatient(c)
	if !ok {
		return
	}

	sessions, err := gc.gameService.ForPatient(c.Request.Context(), patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list game sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient":  patient.FullName,
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// SessionDetails returns one game session, provided its patient is linked
// to the authenticated doctor.
func (gc *GameController) SessionDetails(c *gin.Context) {
	me := currentUser(c)
	if me.Role != models.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors can view patient progress"})
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	session, err := gc.gameService.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game session"})
		return
	}

	patient, err := gc.userService.GetByID(c.Request.Context(), session.PatientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	if !linkedToDoctor(patient, me.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Patient is not linked to you"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// PatientStats aggregates a linked patient's results for one game, with an
// optional level filter.
func (gc *GameController) PatientStats(c *gin.Context) {
	patient, ok := gc.linkedPatient(c)
	if !ok {
		return
	}

	gameName := c.Query("game_name")
	if gameName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_name query parameter is required"})
		return
	}
	level := c.Query("level")

	stats, err := gc.gameService.Stats(c.Request.Context(), patient.ID, gameName, level)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No sessions for this game"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// linkedPatient resolves the :id path parameter to a patient linked to the
// authenticated doctor, writing the error response itself on failure.
func (gc *GameController) linkedPatient(c *gin.Context) (*models.User, bool) {
	me := currentUser(c)
	if me.Role != models.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors can view patient progress"})
		return nil, false
	}

	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return nil, false
	}

	patient, err := gc.userService.GetByID(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return nil, false
	}
	if !linkedToDoctor(patient, me.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Patient is not linked to you"})
		return nil, false
	}
	return patient, true
}

// linkedToDoctor reports whether the patient is linked to the given doctor.
func linkedToDoctor(patient *models.User, doctorID primitive.ObjectID) bool {
	return patient.LinkedDoctorID != nil && *patient.LinkedDoctorID == doctorID
}
