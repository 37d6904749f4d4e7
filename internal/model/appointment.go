package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// DateLayout is the calendar date format used by appointments and records.
const DateLayout = "2006-01-02"

type Appointment struct {
	ID               string            `json:"id"`
	Doctor           Doctor            `json:"doctor"`
	Patient          Patient           `json:"patient"`
	Date             string            `json:"date"`
	Time             string            `json:"time"`
	Status           AppointmentStatus `json:"status"`
	ConsultationType ConsultationType  `json:"consultation_type"`
	Reason           string            `json:"reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	c.Doctor = *a.Doctor.Clone()
	return &c
}

type CreateAppointmentRequest struct {
	DoctorID         string           `json:"doctor_id" binding:"required"`
	PatientID        string           `json:"patient_id"`
	PatientName      string           `json:"patient_name"`
	Date             string           `json:"date" binding:"required,datetime=2006-01-02"`
	Time             string           `json:"time" binding:"required,notblank"`
	ConsultationType ConsultationType `json:"consultation_type" binding:"required,oneof=chat audio video"`
	Reason           string           `json:"reason" binding:"max=1000"`
}

type AppointmentList struct {
	Upcoming []*Appointment `json:"upcoming"`
	Past     []*Appointment `json:"past"`
}

// BookingResult is the new appointment and the session after landing on
// the appointment list.
type BookingResult struct {
	Session     *SessionView `json:"session"`
	Appointment *Appointment `json:"appointment"`
}
