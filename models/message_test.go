package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMessageVisibility(t *testing.T) {
	sender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()

	msg := DirectMessage{SenderID: sender, RecipientID: recipient}
	if !msg.VisibleTo(sender) || !msg.VisibleTo(recipient) {
		t.Error("a fresh message should be visible to both sides")
	}

	msg.DeletedFor = []primitive.ObjectID{sender}
	if msg.VisibleTo(sender) {
		t.Error("sender deleted the message for themselves, it must be hidden from them")
	}
	if !msg.VisibleTo(recipient) {
		t.Error("delete-for-me must not hide the message from the other side")
	}

	msg.IsDeleted = true
	if msg.VisibleTo(recipient) {
		t.Error("delete-for-everyone must hide the message from everyone")
	}
}
