package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatSession is a patient's assistant conversation container. Each patient
// has at most one, created lazily on first message.
type ChatSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID   primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	PatientName string             `bson:"patient_name,omitempty" json:"patient_name,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ChatMessage is one persisted line of an assistant conversation.
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID primitive.ObjectID `bson:"session_id" json:"session_id"`
	Sender    string             `bson:"sender" json:"sender"` // "patient" or "ai"
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// AIChatRequest is the inbound payload for the assistant endpoint.
type AIChatRequest struct {
	Message     string `json:"message"`
	PatientName string `json:"patient_name,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

type AIChatResponse struct {
	Reply string `json:"reply"`
}
