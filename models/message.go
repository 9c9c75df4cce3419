package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DirectMessage is a message between a patient and their linked doctor.
// Deletion works like WhatsApp: a per-user "delete for me" list plus a
// sender-only "delete for everyone" flag.
type DirectMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID    primitive.ObjectID `bson:"sender_id" json:"sender_id"`
	RecipientID primitive.ObjectID `bson:"recipient_id" json:"recipient_id"`
	MessageText string             `bson:"message_text" json:"message_text"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`

	// True hides the message from everyone, permanently.
	IsDeleted bool `bson:"is_deleted" json:"is_deleted"`
	// Users who deleted the message just for themselves.
	DeletedFor []primitive.ObjectID `bson:"deleted_for,omitempty" json:"-"`
	DeletedAt  *time.Time           `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

// VisibleTo reports whether a user should still see this message.
func (m *DirectMessage) VisibleTo(userID primitive.ObjectID) bool {
	if m.IsDeleted {
		return false
	}
	for _, id := range m.DeletedFor {
		if id == userID {
			return false
		}
	}
	return true
}

type DirectMessageCreateRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	MessageText string `json:"message_text" binding:"required"`
}
