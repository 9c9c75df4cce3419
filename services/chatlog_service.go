package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eyenova-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChatLogService persists assistant conversations. Each patient owns at most
// one chat session; messages from both sides are appended to it.
type ChatLogService struct {
	sessions *mongo.Collection
	messages *mongo.Collection
}

func NewChatLogService(db *mongo.Database) *ChatLogService {
	return &ChatLogService{
		sessions: db.Collection("ai_chat_sessions"),
		messages: db.Collection("ai_chat_messages"),
	}
}

// SessionFor returns the patient's chat session, creating it on first use.
func (s *ChatLogService) SessionFor(ctx context.Context, patientID primitive.ObjectID, patientName string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.sessions.FindOne(ctx, bson.M{"patient_id": patientID}).Decode(&session)
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up chat session: %w", err)
	}

	now := time.Now()
	session = models.ChatSession{
		PatientID:   patientID,
		PatientName: patientName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	result, err := s.sessions.InsertOne(ctx, &session)
	if err != nil {
		// Lost the race against a concurrent first message, the unique
		// index guarantees the existing session wins.
		if mongo.IsDuplicateKeyError(err) {
			return s.SessionFor(ctx, patientID, patientName)
		}
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	session.ID = result.InsertedID.(primitive.ObjectID)
	return &session, nil
}

// AppendMessage records one message in the patient's session. Sender is
// either "patient" or "ai".
func (s *ChatLogService) AppendMessage(ctx context.Context, sessionID primitive.ObjectID, sender, content string) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now(),
	}
	result, err := s.messages.InsertOne(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}
	msg.ID = result.InsertedID.(primitive.ObjectID)

	if _, err := s.sessions.UpdateByID(ctx, sessionID,
		bson.M{"$set": bson.M{"updated_at": msg.Timestamp}},
	); err != nil {
		log.Printf("Failed to bump chat session %s: %v", sessionID.Hex(), err)
	}
	return msg, nil
}

// History returns the session's messages ordered oldest first.
func (s *ChatLogService) History(ctx context.Context, sessionID primitive.ObjectID) ([]models.ChatMessage, error) {
	cursor, err := s.messages.Find(ctx, bson.M{"session_id": sessionID}, optionsSortBy("timestamp", 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	var msgs []models.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return msgs, nil
}

// DeleteSessionData removes a patient's chat session and all its messages.
// Used when an account is removed.
func (s *ChatLogService) DeleteSessionData(ctx context.Context, patientID primitive.ObjectID) error {
	var session models.ChatSession
	err := s.sessions.FindOne(ctx, bson.M{"patient_id": patientID}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up chat session: %w", err)
	}
	if _, err := s.messages.DeleteMany(ctx, bson.M{"session_id": session.ID}); err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	if _, err := s.sessions.DeleteOne(ctx, bson.M{"_id": session.ID}); err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	return nil
}
