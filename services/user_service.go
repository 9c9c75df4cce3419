package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eyenova-backend/models"
	"eyenova-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

const doctorCodeLength = 6

type UserService struct {
	users      *mongo.Collection
	games      *mongo.Collection
	messages   *mongo.Collection
	chatLog    *ChatLogService
	bcryptCost int
}

func NewUserService(db *mongo.Database, bcryptCost int) *UserService {
	return &UserService{
		users:      db.Collection("users"),
		games:      db.Collection("game_sessions"),
		messages:   db.Collection("direct_messages"),
		chatLog:    NewChatLogService(db),
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByDoctorCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"doctor_code": strings.ToLower(code)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor code: %w", err)
	}
	return &user, nil
}

// Register creates a new user. Doctors get a unique shareable code.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)
	if _, err := s.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
		Role:           req.Role,
		Age:            req.Age,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		Address:        req.Address,
		CreatedAt:      time.Now(),
	}

	if req.Role == models.RoleDoctor {
		code, err := s.uniqueDoctorCode(ctx)
		if err != nil {
			return nil, err
		}
		user.DoctorCode = code
	}

	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *UserService) uniqueDoctorCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		code, err := utils.GenerateDoctorCode(doctorCodeLength)
		if err != nil {
			return "", err
		}
		_, err = s.GetByDoctorCode(ctx, code)
		if errors.Is(err, ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique doctor code")
}

// Authenticate verifies a user's credentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SetPassword replaces a user's password hash.
func (s *UserService) SetPassword(ctx context.Context, userID primitive.ObjectID, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = s.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"hashed_password": string(hashed)}})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// LinkDoctor links a patient to the doctor owning the given code.
func (s *UserService) LinkDoctor(ctx context.Context, patient *models.User, code string) (*models.User, error) {
	doctor, err := s.GetByDoctorCode(ctx, code)
	if err != nil {
		return nil, err
	}
	_, err = s.users.UpdateByID(ctx, patient.ID, bson.M{"$set": bson.M{"linked_doctor_id": doctor.ID}})
	if err != nil {
		return nil, fmt.Errorf("failed to link doctor: %w", err)
	}
	patient.LinkedDoctorID = &doctor.ID
	return doctor, nil
}

// DisconnectPatient unlinks a patient from a doctor without deleting anything.
func (s *UserService) DisconnectPatient(ctx context.Context, patientID, doctorID primitive.ObjectID) error {
	result, err := s.users.UpdateOne(ctx,
		bson.M{"_id": patientID, "linked_doctor_id": doctorID},
		bson.M{"$unset": bson.M{"linked_doctor_id": ""}},
	)
	if err != nil {
		return fmt.Errorf("failed to disconnect patient: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PatientsForDoctor returns all patients linked to a doctor, sorted by name.
func (s *UserService) PatientsForDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.User, error) {
	cursor, err := s.users.Find(ctx,
		bson.M{"linked_doctor_id": doctorID},
		optionsSortBy("full_name", 1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	var patients []models.User
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// Update applies a partial profile update.
func (s *UserService) Update(ctx context.Context, userID primitive.ObjectID, req models.UserUpdateRequest) (*models.User, error) {
	set := bson.M{}
	if req.FullName != nil {
		set["full_name"] = *req.FullName
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.Gender != nil {
		set["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		set["date_of_birth"] = *req.DateOfBirth
	}
	if req.FatherName != nil {
		set["father_name"] = *req.FatherName
	}
	if req.MotherName != nil {
		set["mother_name"] = *req.MotherName
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if len(set) > 0 {
		if _, err := s.users.UpdateByID(ctx, userID, bson.M{"$set": set}); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return s.GetByID(ctx, userID)
}

// Delete removes a user and cleans up related data: linked patients are
// unlinked, and the user's game sessions, chat log and direct messages go
// with them.
func (s *UserService) Delete(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == models.RoleDoctor {
		if _, err := s.users.UpdateMany(ctx,
			bson.M{"linked_doctor_id": userID},
			bson.M{"$unset": bson.M{"linked_doctor_id": ""}},
		); err != nil {
			return fmt.Errorf("failed to unlink patients: %w", err)
		}
	}

	if _, err := s.games.DeleteMany(ctx, bson.M{"patient_id": userID}); err != nil {
		return fmt.Errorf("failed to delete game sessions: %w", err)
	}

	if err := s.chatLog.DeleteSessionData(ctx, userID); err != nil {
		return err
	}

	if _, err := s.messages.DeleteMany(ctx, bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"recipient_id": userID},
	}}); err != nil {
		return fmt.Errorf("failed to delete direct messages: %w", err)
	}

	if _, err := s.users.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
