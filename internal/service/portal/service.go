// Package portal drives a client session through the portal: it combines
// the view router with the domain services behind each screen.
package portal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	"github.com/jwalitptl/medlink-api/internal/service/appointment"
	"github.com/jwalitptl/medlink-api/internal/service/doctor"
	"github.com/jwalitptl/medlink-api/internal/service/labtest"
	"github.com/jwalitptl/medlink-api/internal/service/medical"
	"github.com/jwalitptl/medlink-api/internal/service/navigation"
	"github.com/jwalitptl/medlink-api/internal/service/prescription"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

const (
	doctorReply  = "Thank you doctor, I will follow your advice."
	patientReply = "Thank you for sharing. Let's talk about that."
)

var endOfCallMedications = []struct{ name, dosage string }{
	{"Amoxicillin", "500mg Capsule"},
	{"Ibuprofen", "200mg Tablet"},
	{"Azithromycin", "250mg Tablet"},
}

var errNoConsultation = apperrors.Conflict("no active consultation", nil)

// Deps are the services a portal session reaches into.
type Deps struct {
	Sessions      repository.SessionRepository
	Doctors       *doctor.Service
	Appointments  *appointment.Service
	Prescriptions *prescription.Service
	Records       *medical.Service
	Labs          *labtest.Service
	Assistant     ai.Assistant
	Metrics       *metrics.Metrics
	// Rand drives the end-of-call prescription. Seeded from the clock when nil.
	Rand *rand.Rand
}

type Service struct {
	Deps
	now func() time.Time

	randMu sync.Mutex
}

func NewService(d Deps) *Service {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{Deps: d, now: time.Now}
}

// Ensure returns the session with the given id, starting a new one when
// the id is empty or has expired.
func (s *Service) Ensure(ctx context.Context, id string) (*model.Session, bool, error) {
	if id != "" {
		sess, err := s.Sessions.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to get session: %w", err)
		}
	}

	sess := navigation.NewSession(uuid.New().String(), s.now().UTC())
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}
	s.Metrics.ActiveSessions.Set(float64(s.Sessions.Count()))
	return sess, true, nil
}

func (s *Service) View(ctx context.Context, id string) (*model.SessionView, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, sessionErr(err)
	}
	return navigation.View(sess), nil
}

// update applies fn to the session under its store lock and returns the
// resolved view.
func (s *Service) update(ctx context.Context, id string, fn func(*model.Session) error) (*model.SessionView, error) {
	sess, err := s.Sessions.Update(ctx, id, func(sess *model.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		sess.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, sessionErr(err)
	}
	return navigation.View(sess), nil
}

func sessionErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("session", err)
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return fmt.Errorf("failed to update session: %w", err)
}

func (s *Service) SwitchView(ctx context.Context, id string, view model.View) (*model.SessionView, error) {
	if !view.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown view %q", view), nil)
	}
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.SwitchView(sess, view)
		return nil
	})
}

func (s *Service) Navigate(ctx context.Context, id string, page model.Page) (*model.SessionView, error) {
	if !navigation.KnownPage(page) {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown page %q", page), nil)
	}
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.Navigate(sess, page)
		return nil
	})
}

func (s *Service) SelectDoctor(ctx context.Context, id, doctorID string) (*model.SessionView, error) {
	d, err := s.Doctors.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.SelectDoctor(sess, d)
		return nil
	})
}

func (s *Service) SelectPatient(ctx context.Context, id, patientID string) (*model.SessionView, error) {
	p, err := s.Appointments.FindPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.SelectPatient(sess, p)
		return nil
	})
}

func (s *Service) BackToPatients(ctx context.Context, id string) (*model.SessionView, error) {
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.BackToPatients(sess)
		return nil
	})
}

// PatientProfile is the selected patient's appointments and the records
// on file.
func (s *Service) PatientProfile(ctx context.Context, id string) (*model.PatientProfile, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, sessionErr(err)
	}
	if sess.SelectedPatient == nil {
		return nil, apperrors.Conflict("no patient selected", nil)
	}

	appts, err := s.Appointments.ListByPatient(ctx, sess.SelectedPatient.ID)
	if err != nil {
		return nil, err
	}
	records, err := s.Records.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PatientProfile{
		Patient:      *sess.SelectedPatient,
		Appointments: appts,
		Records:      records,
	}, nil
}

// Book creates the appointment and lands the session on the appointment list.
func (s *Service) Book(ctx context.Context, id string, req *model.CreateAppointmentRequest) (*model.BookingResult, error) {
	if _, err := s.Sessions.Get(ctx, id); err != nil {
		return nil, sessionErr(err)
	}

	apt, err := s.Appointments.Book(ctx, req)
	if err != nil {
		return nil, err
	}
	view, err := s.update(ctx, id, func(sess *model.Session) error {
		navigation.Booked(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &model.BookingResult{Session: view, Appointment: apt}, nil
}
