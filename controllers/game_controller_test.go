package controllers

import (
	"testing"

	"eyenova-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLinkedToDoctor(t *testing.T) {
	doctorID := primitive.NewObjectID()
	otherDoctorID := primitive.NewObjectID()

	linked := &models.User{
		ID:             primitive.NewObjectID(),
		Role:           models.RolePatient,
		LinkedDoctorID: &doctorID,
	}
	unlinked := &models.User{
		ID:   primitive.NewObjectID(),
		Role: models.RolePatient,
	}

	if !linkedToDoctor(linked, doctorID) {
		t.Error("a patient linked to the doctor should pass the guard")
	}
	if linkedToDoctor(linked, otherDoctorID) {
		t.Error("another doctor must not pass the guard for this patient")
	}
	if linkedToDoctor(unlinked, doctorID) {
		t.Error("an unlinked patient must not pass the guard")
	}
}
