package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameSession stores the result of one game a patient played. These records
// back the progress screens of the doctor dashboard.
type GameSession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID       primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	GameName        string             `bson:"game_name" json:"game_name"`
	Level           string             `bson:"level,omitempty" json:"level,omitempty"` // Low / Medium / High
	Score           int                `bson:"score" json:"score"`
	Accuracy        float64            `bson:"accuracy" json:"accuracy"`
	DurationSeconds int                `bson:"duration_seconds" json:"duration_seconds"`
	Status          string             `bson:"status" json:"status"`
	DatePlayed      time.Time          `bson:"date_played" json:"date_played"`
}

type GameSessionCreateRequest struct {
	GameName        string  `json:"game_name" binding:"required"`
	Level           string  `json:"level,omitempty"`
	Score           int     `json:"score"`
	Accuracy        float64 `json:"accuracy"`
	DurationSeconds int     `json:"duration_seconds"`
	Status          string  `json:"status,omitempty"`
}

// GameStats aggregates a patient's sessions for one game.
type GameStats struct {
	BestScore   int     `json:"best_score"`
	AvgTime     float64 `json:"avg_time"`
	AvgAccuracy float64 `json:"avg_accuracy"`
	Count       int     `json:"count"`
}
