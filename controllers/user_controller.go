package controllers

import (
	"errors"
	"net/http"

	"eyenova-backend/models"
	"eyenova-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// currentUser pulls the authenticated user set by the auth middleware.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	return value.(*models.User)
}

// Me returns the authenticated user's own profile.
func (uc *UserController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// GetByID returns another user's profile. Patients may only look at their
// linked doctor, doctors only at their linked patients.
func (uc *UserController) GetByID(c *gin.Context) {
	me := currentUser(c)

	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if targetID == me.ID {
		c.JSON(http.StatusOK, me)
		return
	}

	target, err := uc.userService.GetByID(c.Request.Context(), targetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	allowed := false
	switch me.Role {
	case models.RolePatient:
		allowed = me.LinkedDoctorID != nil && *me.LinkedDoctorID == target.ID
	case models.RoleDoctor:
		allowed = target.LinkedDoctorID != nil && *target.LinkedDoctorID == me.ID
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this user"})
		return
	}

	c.JSON(http.StatusOK, target)
}

// UpdateMe applies a partial profile update to the authenticated user.
func (uc *UserController) UpdateMe(c *gin.Context) {
	me := currentUser(c)

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	updated, err := uc.userService.Update(c.Request.Context(), me.ID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMe removes the authenticated user's account and all its data.
func (uc *UserController) DeleteMe(c *gin.Context) {
	me := currentUser(c)

	if err := uc.userService.Delete(c.Request.Context(), me.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// DeletePatient lets a doctor remove one of their linked patients.
func (uc *UserController) DeletePatient(c *gin.Context) {
	me := currentUser(c)
	if me.Role != models.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors can remove patients"})
		return
	}

	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	patient, err := uc.userService.GetByID(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	if patient.LinkedDoctorID == nil || *patient.LinkedDoctorID != me.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Patient is not linked to you"})
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), patient.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}

// LinkDoctor connects a patient to a doctor by the doctor's share code.
func (uc *UserController) LinkDoctor(c *gin.Context) {
	me := currentUser(c)
	if me.Role != models.RolePatient {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only patients can link a doctor"})
		return
	}

	var req models.DoctorLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	doctor, err := uc.userService.LinkDoctor(c.Request.Context(), me, req.DoctorCode)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid doctor code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Doctor linked",
		"doctor":  doctor,
	})
}

// MyPatients lists the patients linked to the authenticated doctor.
func (uc *UserController) MyPatients(c *gin.Context) {
	me := currentUser(c)
	if me.Role != models.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors have patients"})
		return
	}

	patients, err := uc.userService.PatientsForDoctor(c.Request.Context(), me.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list patients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// DisconnectPatient unlinks a patient from the authenticated doctor without
// deleting the account.
func (uc *UserController) DisconnectPatient(c *gin.Context) {
	me := currentUser(c)
	if me.Role != models.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors can disconnect patients"})
		return
	}

	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := uc.userService.DisconnectPatient(c.Request.Context(), patientID, me.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient is not linked to you"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient disconnected"})
}
