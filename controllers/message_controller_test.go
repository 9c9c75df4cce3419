package controllers

import (
	"testing"

	"eyenova-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanMessageRequiresLink(t *testing.T) {
	doctorID := primitive.NewObjectID()
	otherDoctorID := primitive.NewObjectID()

	doctor := &models.User{ID: doctorID, Role: models.RoleDoctor}
	otherDoctor := &models.User{ID: otherDoctorID, Role: models.RoleDoctor}
	linkedPatient := &models.User{
		ID:             primitive.NewObjectID(),
		Role:           models.RolePatient,
		LinkedDoctorID: &doctorID,
	}
	unlinkedPatient := &models.User{
		ID:   primitive.NewObjectID(),
		Role: models.RolePatient,
	}

	if !canMessage(linkedPatient, doctor) {
		t.Error("a patient should reach their linked doctor")
	}
	if !canMessage(doctor, linkedPatient) {
		t.Error("a doctor should reach their linked patients")
	}
	if canMessage(linkedPatient, otherDoctor) {
		t.Error("a patient must not reach a doctor they are not linked to")
	}
	if canMessage(unlinkedPatient, doctor) {
		t.Error("an unlinked patient must not reach any doctor")
	}
	if canMessage(otherDoctor, linkedPatient) {
		t.Error("a doctor must not reach another doctor's patient")
	}
	if canMessage(linkedPatient, unlinkedPatient) {
		t.Error("patients must not message each other")
	}
}
