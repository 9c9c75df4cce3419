package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eyenova-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotMessageSender = errors.New("only the message sender can delete it for everyone")

type MessageService struct {
	messages *mongo.Collection
	users    *mongo.Collection
}

func NewMessageService(db *mongo.Database) *MessageService {
	return &MessageService{
		messages: db.Collection("direct_messages"),
		users:    db.Collection("users"),
	}
}

// Send stores a direct message. Permission checks (patient may only message
// the linked doctor and vice versa) belong to the controller layer.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID primitive.ObjectID, text string) (*models.DirectMessage, error) {
	msg := &models.DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		MessageText: text,
		Timestamp:   time.Now(),
	}
	result, err := s.messages.InsertOne(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	msg.ID = result.InsertedID.(primitive.ObjectID)
	return msg, nil
}

// GetByID returns one message regardless of visibility.
func (s *MessageService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DirectMessage, error) {
	var msg models.DirectMessage
	err := s.messages.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up message: %w", err)
	}
	return &msg, nil
}

// ConversationBetween returns the messages between two users, oldest first,
// filtered to those still visible to the requesting user.
func (s *MessageService) ConversationBetween(ctx context.Context, user1, user2, requester primitive.ObjectID) ([]models.DirectMessage, error) {
	cursor, err := s.messages.Find(ctx, bson.M{"$or": bson.A{
		bson.M{"sender_id": user1, "recipient_id": user2},
		bson.M{"sender_id": user2, "recipient_id": user1},
	}}, optionsSortBy("timestamp", 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	var all []models.DirectMessage
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	visible := make([]models.DirectMessage, 0, len(all))
	for _, m := range all {
		if m.VisibleTo(requester) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

// ConversationPartners lists everyone the user has exchanged messages with,
// plus their linked doctor or patients even when no message exists yet.
func (s *MessageService) ConversationPartners(ctx context.Context, user *models.User) ([]models.User, error) {
	cursor, err := s.messages.Find(ctx, bson.M{"$or": bson.A{
		bson.M{"sender_id": user.ID},
		bson.M{"recipient_id": user.ID},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	var msgs []models.DirectMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	partnerIDs := map[primitive.ObjectID]struct{}{}
	for _, m := range msgs {
		if !m.VisibleTo(user.ID) {
			continue
		}
		if m.SenderID == user.ID {
			partnerIDs[m.RecipientID] = struct{}{}
		} else {
			partnerIDs[m.SenderID] = struct{}{}
		}
	}

	switch user.Role {
	case models.RolePatient:
		if user.LinkedDoctorID != nil {
			partnerIDs[*user.LinkedDoctorID] = struct{}{}
		}
	case models.RoleDoctor:
		patients, err := s.users.Find(ctx, bson.M{"linked_doctor_id": user.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list linked patients: %w", err)
		}
		var linked []models.User
		if err := patients.All(ctx, &linked); err != nil {
			return nil, fmt.Errorf("failed to decode linked patients: %w", err)
		}
		for _, p := range linked {
			partnerIDs[p.ID] = struct{}{}
		}
	}

	if len(partnerIDs) == 0 {
		return []models.User{}, nil
	}

	ids := make(bson.A, 0, len(partnerIDs))
	for id := range partnerIDs {
		ids = append(ids, id)
	}
	cursor, err = s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to load partners: %w", err)
	}
	var partners []models.User
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, fmt.Errorf("failed to decode partners: %w", err)
	}
	return partners, nil
}

// DeleteForMe hides the message from one user only.
func (s *MessageService) DeleteForMe(ctx context.Context, messageID, userID primitive.ObjectID) error {
	result, err := s.messages.UpdateByID(ctx, messageID,
		bson.M{"$addToSet": bson.M{"deleted_for": userID}},
	)
	if err != nil {
		return fmt.Errorf("failed to delete message for user: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteForEveryone hides the message from both sides. Only the sender may
// do this; the caller provides the requesting user for the check.
func (s *MessageService) DeleteForEveryone(ctx context.Context, messageID, requesterID primitive.ObjectID) error {
	msg, err := s.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != requesterID {
		return ErrNotMessageSender
	}

	now := time.Now()
	_, err = s.messages.UpdateByID(ctx, messageID, bson.M{"$set": bson.M{
		"is_deleted": true,
		"deleted_at": now,
	}})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
