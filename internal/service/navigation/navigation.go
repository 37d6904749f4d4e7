// Package navigation holds the portal's view router: which page is active,
// what is selected, and which screen that combination resolves to. All
// functions mutate the session passed in and never fail.
package navigation

import (
	"time"

	"github.com/jwalitptl/medlink-api/internal/model"
)

var patientNav = []model.NavItem{
	{ID: model.PageDashboard, Label: "Dashboard"},
	{ID: model.PageFindDoctor, Label: "Find a Doctor"},
	{ID: model.PageTelemedicine, Label: "AI Symptom Checker"},
	{ID: model.PageAppointments, Label: "Appointments"},
	{ID: model.PageBookLabTest, Label: "Book a Lab Test"},
	{ID: model.PagePrescriptions, Label: "Prescription Refills"},
	{ID: model.PageRecords, Label: "Medical Records"},
	{ID: model.PageWallet, Label: "Wallet & Insurance"},
}

var doctorNav = []model.NavItem{
	{ID: model.PageDoctorDashboard, Label: "Dashboard"},
	{ID: model.PageDoctorAppointments, Label: "Appointments"},
	{ID: model.PageDoctorPatients, Label: "My Patients"},
	{ID: model.PageDoctorRefills, Label: "Refill Requests"},
}

// patientScreens and doctorScreens are the pages each mode can render
// directly. Pages with a selection requirement are handled in Resolve.
var patientScreens = map[model.Page]bool{
	model.PageDashboard:     true,
	model.PageFindDoctor:    true,
	model.PageTelemedicine:  true,
	model.PageRecords:       true,
	model.PageAppointments:  true,
	model.PageBookLabTest:   true,
	model.PagePrescriptions: true,
	model.PageWallet:        true,
}

var doctorScreens = map[model.Page]bool{
	model.PageDoctorDashboard:    true,
	model.PageDoctorAppointments: true,
	model.PageDoctorPatients:     true,
	model.PageDoctorRefills:      true,
}

var knownPages = map[model.Page]bool{
	model.PageDoctorProfile:           true,
	model.PageConsultation:            true,
	model.PageDoctorPatientProfile:    true,
	model.PagePostConsultationSummary: true,
	model.PageDoctorRegistration:      true,
}

func init() {
	for p := range patientScreens {
		knownPages[p] = true
	}
	for p := range doctorScreens {
		knownPages[p] = true
	}
}

// KnownPage reports whether p names a page at all.
func KnownPage(p model.Page) bool {
	return knownPages[p]
}

// NewSession returns a session on the patient dashboard.
func NewSession(id string, now time.Time) *model.Session {
	return &model.Session{
		ID:               id,
		View:             model.ViewPatient,
		ActivePage:       model.PageDashboard,
		ConsultationChat: []model.ConsultationChatMessage{},
		SymptomChat:      []model.SymptomChatMessage{},
		LocationStatus:   model.LocationIdle,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func SwitchView(s *model.Session, view model.View) {
	s.View = view
	switch view {
	case model.ViewPatient:
		s.ActivePage = model.PageDashboard
		s.SelectedPatient = nil
	case model.ViewDoctor:
		s.ActivePage = model.PageDoctorDashboard
		s.SelectedDoctor = nil
	case model.ViewRegistration:
		s.ActivePage = model.PageDoctorRegistration
		s.SelectedDoctor = nil
		s.SelectedPatient = nil
	}
}

// Navigate follows a sidebar link, dropping the current mode's selection.
func Navigate(s *model.Session, page model.Page) {
	if s.DoctorMode() {
		s.SelectedPatient = nil
	} else {
		s.SelectedDoctor = nil
	}
	s.ActivePage = page
}

func SelectDoctor(s *model.Session, d *model.Doctor) {
	s.SelectedDoctor = d.Clone()
	s.ActivePage = model.PageDoctorProfile
}

func SelectPatient(s *model.Session, p model.Patient) {
	s.SelectedPatient = &p
	s.ActivePage = model.PageDoctorPatientProfile
}

func BackToPatients(s *model.Session) {
	s.SelectedPatient = nil
	s.ActivePage = model.PageDoctorPatients
}

// Booked lands on the appointment list after a successful booking.
func Booked(s *model.Session) {
	s.SelectedDoctor = nil
	s.ActivePage = model.PageAppointments
}

func JoinCall(s *model.Session, a *model.Appointment) {
	s.ActiveAppointment = a.Clone()
	s.ConsultationChat = []model.ConsultationChatMessage{}
	s.ActivePage = model.PageConsultation
}

// EndCall sends a doctor on to the summary screen with the call context
// intact; anyone else returns to their appointments.
func EndCall(s *model.Session) {
	if s.DoctorMode() && s.ActiveAppointment != nil {
		s.ActivePage = model.PagePostConsultationSummary
		return
	}
	clearCall(s)
	s.ActivePage = model.PageAppointments
}

func FinishConsultation(s *model.Session) {
	clearCall(s)
	s.ActivePage = model.PageDoctorAppointments
}

func clearCall(s *model.Session) {
	s.ActiveAppointment = nil
	s.ConsultationChat = []model.ConsultationChatMessage{}
}

// Resolve picks the screen to render. Pages that need a selection fall
// back to a sensible neighbour when the selection is missing.
func Resolve(s *model.Session) model.Screen {
	if s.ActivePage == model.PageConsultation && s.ActiveAppointment != nil {
		return model.Screen(model.PageConsultation)
	}

	switch s.View {
	case model.ViewDoctor:
		return resolveDoctor(s)
	case model.ViewRegistration:
		if s.ActivePage == model.PageConsultation {
			return resolvePatient(s)
		}
		return model.Screen(model.PageDoctorRegistration)
	default:
		return resolvePatient(s)
	}
}

func resolvePatient(s *model.Session) model.Screen {
	switch {
	case s.ActivePage == model.PageDoctorProfile:
		if s.SelectedDoctor == nil {
			return model.Screen(model.PageFindDoctor)
		}
		return model.Screen(model.PageDoctorProfile)
	case patientScreens[s.ActivePage]:
		return model.Screen(s.ActivePage)
	default:
		return model.Screen(model.PageDashboard)
	}
}

func resolveDoctor(s *model.Session) model.Screen {
	switch {
	case s.ActivePage == model.PageDoctorPatientProfile:
		if s.SelectedPatient == nil {
			return model.Screen(model.PageDoctorPatients)
		}
		return model.Screen(model.PageDoctorPatientProfile)
	case s.ActivePage == model.PagePostConsultationSummary:
		if s.ActiveAppointment == nil {
			return model.Screen(model.PageDoctorDashboard)
		}
		return model.Screen(model.PagePostConsultationSummary)
	case doctorScreens[s.ActivePage]:
		return model.Screen(s.ActivePage)
	default:
		return model.Screen(model.PageDoctorDashboard)
	}
}

// NavItems is the sidebar for the session's mode. Registration has none.
func NavItems(view model.View) []model.NavItem {
	switch view {
	case model.ViewDoctor:
		return append([]model.NavItem(nil), doctorNav...)
	case model.ViewPatient:
		return append([]model.NavItem(nil), patientNav...)
	default:
		return []model.NavItem{}
	}
}

// View wraps the session with its resolved screen and sidebar.
func View(s *model.Session) *model.SessionView {
	return &model.SessionView{
		Session: s,
		Screen:  Resolve(s),
		Nav:     NavItems(s.View),
	}
}
