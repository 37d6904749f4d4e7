package model

import "time"

// Page is a sidebar destination or transient screen.
type Page string

const (
	PageDashboard               Page = "dashboard"
	PageFindDoctor              Page = "find-doctor"
	PageTelemedicine            Page = "telemedicine"
	PageRecords                 Page = "records"
	PageAppointments            Page = "appointments"
	PagePrescriptions           Page = "prescriptions"
	PageWallet                  Page = "wallet"
	PageDoctorProfile           Page = "doctor-profile"
	PageConsultation            Page = "consultation"
	PageBookLabTest             Page = "book-lab-test"
	PageDoctorDashboard         Page = "doctor-dashboard"
	PageDoctorAppointments      Page = "doctor-appointments"
	PageDoctorPatients          Page = "doctor-patients"
	PageDoctorPatientProfile    Page = "doctor-patient-profile"
	PageDoctorRefills           Page = "doctor-refills"
	PagePostConsultationSummary Page = "post-consultation-summary"
	PageDoctorRegistration      Page = "doctor-registration"
)

// View is the portal mode.
type View string

const (
	ViewPatient      View = "patient_app"
	ViewDoctor       View = "doctor_app"
	ViewRegistration View = "doctor_registration"
)

func (v View) Valid() bool {
	switch v {
	case ViewPatient, ViewDoctor, ViewRegistration:
		return true
	}
	return false
}

// Screen is what the client must render after resolving page, view and
// selection state.
type Screen string

type LocationStatus string

const (
	LocationIdle    LocationStatus = "idle"
	LocationPending LocationStatus = "pending"
	LocationSuccess LocationStatus = "success"
	LocationDenied  LocationStatus = "denied"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SetLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// Session is the per-client view-router state.
type Session struct {
	ID                string                    `json:"id"`
	View              View                      `json:"view"`
	ActivePage        Page                      `json:"active_page"`
	SelectedDoctor    *Doctor                   `json:"selected_doctor,omitempty"`
	SelectedPatient   *Patient                  `json:"selected_patient,omitempty"`
	ActiveAppointment *Appointment              `json:"active_appointment,omitempty"`
	ConsultationChat  []ConsultationChatMessage `json:"consultation_chat"`
	SymptomChat       []SymptomChatMessage      `json:"symptom_chat"`
	Location          *Location                 `json:"location,omitempty"`
	LocationStatus    LocationStatus            `json:"location_status"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func (s *Session) DoctorMode() bool {
	return s.View == ViewDoctor
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.SelectedDoctor = s.SelectedDoctor.Clone()
	if s.SelectedPatient != nil {
		p := *s.SelectedPatient
		c.SelectedPatient = &p
	}
	c.ActiveAppointment = s.ActiveAppointment.Clone()
	if s.ConsultationChat != nil {
		c.ConsultationChat = make([]ConsultationChatMessage, len(s.ConsultationChat))
		copy(c.ConsultationChat, s.ConsultationChat)
	}
	if s.SymptomChat != nil {
		c.SymptomChat = make([]SymptomChatMessage, len(s.SymptomChat))
		copy(c.SymptomChat, s.SymptomChat)
	}
	if s.Location != nil {
		l := *s.Location
		c.Location = &l
	}
	return &c
}

type NavItem struct {
	ID    Page   `json:"id"`
	Label string `json:"label"`
}

// SessionView is the session as returned to clients, with the screen to
// render and the sidebar for the current mode.
type SessionView struct {
	Session *Session  `json:"session"`
	Screen  Screen    `json:"screen"`
	Nav     []NavItem `json:"nav"`
}

type SwitchViewRequest struct {
	View View `json:"view" binding:"required,oneof=patient_app doctor_app doctor_registration"`
}

type NavigateRequest struct {
	Page Page `json:"page" binding:"required"`
}
