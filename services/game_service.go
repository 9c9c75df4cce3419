package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eyenova-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrInvalidGameName = errors.New("invalid game_name")

type GameService struct {
	games *mongo.Collection
}

func NewGameService(db *mongo.Database) *GameService {
	return &GameService{games: db.Collection("game_sessions")}
}

// Create records one finished game for a patient. Placeholder names are
// rejected rather than stored.
func (s *GameService) Create(ctx context.Context, patientID primitive.ObjectID, req models.GameSessionCreateRequest) (*models.GameSession, error) {
	name := strings.TrimSpace(req.GameName)
	if name == "" || strings.EqualFold(name, "unknown game") {
		return nil, ErrInvalidGameName
	}

	status := req.Status
	if status == "" {
		status = "completed"
	}

	session := &models.GameSession{
		PatientID:       patientID,
		GameName:        name,
		Level:           req.Level,
		Score:           req.Score,
		Accuracy:        req.Accuracy,
		DurationSeconds: req.DurationSeconds,
		Status:          status,
		DatePlayed:      time.Now(),
	}

	result, err := s.games.InsertOne(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to save game session: %w", err)
	}
	session.ID = result.InsertedID.(primitive.ObjectID)
	return session, nil
}

// ForPatient returns all of a patient's sessions, newest first.
func (s *GameService) ForPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.GameSession, error) {
	cursor, err := s.games.Find(ctx,
		bson.M{"patient_id": patientID},
		optionsSortBy("date_played", -1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list game sessions: %w", err)
	}
	var sessions []models.GameSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode game sessions: %w", err)
	}
	return sessions, nil
}

// GetByID returns a single game session.
func (s *GameService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GameSession, error) {
	var session models.GameSession
	err := s.games.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up game session: %w", err)
	}
	return &session, nil
}

// Stats aggregates a patient's sessions for one game, optionally filtered by
// level. Returns ErrNotFound when no sessions match.
func (s *GameService) Stats(ctx context.Context, patientID primitive.ObjectID, gameName, level string) (*models.GameStats, error) {
	filter := bson.M{"patient_id": patientID, "game_name": gameName}
	if level != "" {
		filter["level"] = level
	}

	cursor, err := s.games.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query game stats: %w", err)
	}
	var sessions []models.GameSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode game stats: %w", err)
	}
	if len(sessions) == 0 {
		return nil, ErrNotFound
	}

	stats := &models.GameStats{Count: len(sessions)}
	totalTime, totalAccuracy := 0, 0.0
	for _, gs := range sessions {
		if gs.Score > stats.BestScore {
			stats.BestScore = gs.Score
		}
		totalTime += gs.DurationSeconds
		totalAccuracy += gs.Accuracy
	}
	stats.AvgTime = float64(totalTime) / float64(len(sessions))
	stats.AvgAccuracy = totalAccuracy / float64(len(sessions))
	return stats, nil
}
