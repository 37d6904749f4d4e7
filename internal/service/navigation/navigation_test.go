package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/medlink-api/internal/model"
)

var (
	reed  = &model.Doctor{ID: "doc1", Name: "Dr. Evelyn Reed", Specialty: "Cardiologist"}
	alex  = model.Patient{ID: "user1", Name: "Alex Doe"}
	appt1 = &model.Appointment{ID: "1", Doctor: *reed, Patient: alex, Status: model.AppointmentStatusUpcoming}
)

func newSession() *model.Session {
	return NewSession("s1", time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC))
}

func TestNewSessionStartsOnPatientDashboard(t *testing.T) {
	s := newSession()
	assert.Equal(t, model.ViewPatient, s.View)
	assert.Equal(t, model.Screen(model.PageDashboard), Resolve(s))
	assert.Equal(t, model.LocationIdle, s.LocationStatus)
	assert.Len(t, NavItems(s.View), 8)
}

func TestSwitchViewResetsPageAndSelection(t *testing.T) {
	s := newSession()
	SelectDoctor(s, reed)
	s.SelectedPatient = &alex

	SwitchView(s, model.ViewDoctor)
	assert.Equal(t, model.PageDoctorDashboard, s.ActivePage)
	assert.Nil(t, s.SelectedDoctor)
	assert.NotNil(t, s.SelectedPatient)

	SwitchView(s, model.ViewPatient)
	assert.Equal(t, model.PageDashboard, s.ActivePage)
	assert.Nil(t, s.SelectedPatient)

	SelectDoctor(s, reed)
	s.SelectedPatient = &alex
	SwitchView(s, model.ViewRegistration)
	assert.Equal(t, model.Screen(model.PageDoctorRegistration), Resolve(s))
	assert.Nil(t, s.SelectedDoctor)
	assert.Nil(t, s.SelectedPatient)
	assert.Empty(t, NavItems(s.View))
}

func TestNavigateClearsModeSelection(t *testing.T) {
	s := newSession()
	SelectDoctor(s, reed)
	Navigate(s, model.PageRecords)
	assert.Nil(t, s.SelectedDoctor)
	assert.Equal(t, model.Screen(model.PageRecords), Resolve(s))

	SwitchView(s, model.ViewDoctor)
	SelectPatient(s, alex)
	assert.Equal(t, model.Screen(model.PageDoctorPatientProfile), Resolve(s))
	Navigate(s, model.PageDoctorRefills)
	assert.Nil(t, s.SelectedPatient)
}

func TestResolveFallbacks(t *testing.T) {
	cases := []struct {
		name string
		view model.View
		page model.Page
		want model.Page
	}{
		{"doctor profile without doctor", model.ViewPatient, model.PageDoctorProfile, model.PageFindDoctor},
		{"patient profile without patient", model.ViewDoctor, model.PageDoctorPatientProfile, model.PageDoctorPatients},
		{"summary without appointment", model.ViewDoctor, model.PagePostConsultationSummary, model.PageDoctorDashboard},
		{"patient consultation without appointment", model.ViewPatient, model.PageConsultation, model.PageDashboard},
		{"doctor consultation without appointment", model.ViewDoctor, model.PageConsultation, model.PageDoctorDashboard},
		{"doctor page in patient mode", model.ViewPatient, model.PageDoctorRefills, model.PageDashboard},
		{"patient page in doctor mode", model.ViewDoctor, model.PageWallet, model.PageDoctorDashboard},
		{"unknown page", model.ViewPatient, model.Page("settings"), model.PageDashboard},
		{"registration view", model.ViewRegistration, model.PageWallet, model.PageDoctorRegistration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession()
			s.View = tc.view
			s.ActivePage = tc.page
			assert.Equal(t, model.Screen(tc.want), Resolve(s))
		})
	}
}

func TestPatientCallFlow(t *testing.T) {
	s := newSession()
	JoinCall(s, appt1)
	assert.Equal(t, model.Screen(model.PageConsultation), Resolve(s))
	assert.Empty(t, s.ConsultationChat)

	s.ConsultationChat = append(s.ConsultationChat, model.ConsultationChatMessage{ID: "m1", Text: "hi"})
	EndCall(s)
	assert.Nil(t, s.ActiveAppointment)
	assert.Empty(t, s.ConsultationChat)
	assert.Equal(t, model.Screen(model.PageAppointments), Resolve(s))
}

func TestDoctorCallFlow(t *testing.T) {
	s := newSession()
	SwitchView(s, model.ViewDoctor)
	JoinCall(s, appt1)
	s.ConsultationChat = append(s.ConsultationChat, model.ConsultationChatMessage{ID: "m1", Text: "hi"})

	EndCall(s)
	assert.Equal(t, model.Screen(model.PagePostConsultationSummary), Resolve(s))
	assert.NotNil(t, s.ActiveAppointment)
	assert.Len(t, s.ConsultationChat, 1)

	FinishConsultation(s)
	assert.Nil(t, s.ActiveAppointment)
	assert.Empty(t, s.ConsultationChat)
	assert.Equal(t, model.Screen(model.PageDoctorAppointments), Resolve(s))
}

func TestBackToPatientsAndBooked(t *testing.T) {
	s := newSession()
	SwitchView(s, model.ViewDoctor)
	SelectPatient(s, alex)
	BackToPatients(s)
	assert.Nil(t, s.SelectedPatient)
	assert.Equal(t, model.PageDoctorPatients, s.ActivePage)

	SwitchView(s, model.ViewPatient)
	SelectDoctor(s, reed)
	Booked(s)
	assert.Nil(t, s.SelectedDoctor)
	assert.Equal(t, model.PageAppointments, s.ActivePage)
}

func TestKnownPage(t *testing.T) {
	assert.True(t, KnownPage(model.PageWallet))
	assert.True(t, KnownPage(model.PagePostConsultationSummary))
	assert.False(t, KnownPage(model.Page("admin")))
}
