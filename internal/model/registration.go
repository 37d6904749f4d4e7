package model

import "time"

type RegistrationStatus string

const RegistrationSubmitted RegistrationStatus = "submitted"

// Specialties offered on the registration form.
var Specialties = []string{"Cardiology", "Dermatology", "Pediatrics", "Neurology", "Orthopedics", "General Practice"}

type DoctorRegistrationRequest struct {
	FullName          string             `json:"full_name" binding:"required,notblank"`
	Email             string             `json:"email" binding:"required,email"`
	PhoneNumber       string             `json:"phone_number" binding:"required,notblank"`
	Specialty         string             `json:"specialty" binding:"required,notblank"`
	LicenseNumber     string             `json:"license_number" binding:"required,notblank"`
	YearsOfExperience int                `json:"years_of_experience" binding:"gte=0"`
	ConsultationFee   float64            `json:"consultation_fee" binding:"gte=0"`
	ConsultationTypes []ConsultationType `json:"consultation_types" binding:"required,min=1,dive,oneof=chat audio video"`
	DocumentName      string             `json:"document_name"`
}

type DoctorRegistration struct {
	ID                string             `json:"id"`
	FullName          string             `json:"full_name"`
	Email             string             `json:"email"`
	PhoneNumber       string             `json:"phone_number"`
	Specialty         string             `json:"specialty"`
	LicenseNumber     string             `json:"license_number"`
	YearsOfExperience int                `json:"years_of_experience"`
	ConsultationFee   float64            `json:"consultation_fee"`
	ConsultationTypes []ConsultationType `json:"consultation_types"`
	DocumentName      string             `json:"document_name,omitempty"`
	Status            RegistrationStatus `json:"status"`
	SubmittedAt       time.Time          `json:"submitted_at"`
}
