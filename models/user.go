package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RolePatient UserRole = "Patient"
	RoleDoctor  UserRole = "Doctor"
)

// User represents both patients and doctors, distinguished by Role.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	FullName       string             `bson:"full_name" json:"full_name"`
	Role           UserRole           `bson:"role" json:"role"`

	// Doctor-specific: the unique code a doctor shares with patients.
	DoctorCode string `bson:"doctor_code,omitempty" json:"doctor_code,omitempty"`

	// Patient-specific profile fields.
	Age         int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender      string `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth string `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	FatherName  string `bson:"father_name,omitempty" json:"father_name,omitempty"`
	MotherName  string `bson:"mother_name,omitempty" json:"mother_name,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`

	// Links a patient to their doctor.
	LinkedDoctorID *primitive.ObjectID `bson:"linked_doctor_id,omitempty" json:"linked_doctor_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	FullName    string   `json:"full_name" binding:"required"`
	Role        UserRole `json:"role" binding:"required"`
	Age         int      `json:"age,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	FatherName  string   `json:"father_name,omitempty"`
	MotherName  string   `json:"mother_name,omitempty"`
	Address     string   `json:"address,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserUpdateRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	FatherName  *string `json:"father_name,omitempty"`
	MotherName  *string `json:"mother_name,omitempty"`
	Address     *string `json:"address,omitempty"`
}

type DoctorLinkRequest struct {
	DoctorCode string `json:"doctor_code" binding:"required"`
}

type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	// "signup" requires a new email, "reset" an existing one.
	Intent string `json:"intent" binding:"required,oneof=signup reset"`
}

type OTPVerifyRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Intent string `json:"intent" binding:"required,oneof=signup reset"`
	OTP    string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
