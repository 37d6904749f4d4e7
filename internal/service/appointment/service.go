package appointment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	"github.com/jwalitptl/medlink-api/internal/service/event"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

// DefaultPatient is the signed-in patient in patient mode.
var DefaultPatient = model.Patient{ID: "user1", Name: "Alex Doe"}

type Service struct {
	repo    repository.AppointmentRepository
	doctors repository.DoctorRepository
	events  event.Emitter
	now     func() time.Time
}

func NewService(repo repository.AppointmentRepository, doctors repository.DoctorRepository, events event.Emitter) *Service {
	return &Service{
		repo:    repo,
		doctors: doctors,
		events:  events,
		now:     time.Now,
	}
}

func (s *Service) validate(req *model.CreateAppointmentRequest, doctor *model.Doctor) error {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return apperrors.BadRequest("Please select a valid date.", err)
	}
	if strings.TrimSpace(req.Time) == "" {
		return apperrors.BadRequest("Please select a time.", nil)
	}
	if !req.ConsultationType.Valid() {
		return apperrors.BadRequest("Please select a consultation type.", nil)
	}
	if !doctor.Offers(req.ConsultationType) {
		return apperrors.BadRequest(
			fmt.Sprintf("%s does not offer %s consultations.", doctor.Name, req.ConsultationType), nil)
	}
	return nil
}

// Book creates an upcoming appointment with a snapshot of the doctor's profile.
func (s *Service) Book(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	doctor, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if err := s.validate(req, doctor); err != nil {
		return nil, err
	}

	patient := DefaultPatient
	if req.PatientID != "" {
		patient = model.Patient{ID: req.PatientID, Name: req.PatientName}
	}

	apt := &model.Appointment{
		Doctor:           *doctor,
		Patient:          patient,
		Date:             req.Date,
		Time:             strings.TrimSpace(req.Time),
		Status:           model.AppointmentStatusUpcoming,
		ConsultationType: req.ConsultationType,
		Reason:           strings.TrimSpace(req.Reason),
		CreatedAt:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.events.Emit(ctx, event.AppointmentBooked, apt)
	return apt, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return apt, nil
}

// List splits appointments into upcoming, soonest first, and everything
// else, most recent first.
func (s *Service) List(ctx context.Context) (*model.AppointmentList, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return split(all), nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	out := []*model.Appointment{}
	for _, a := range all {
		if a.Patient.ID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

// UniquePatients derives the patient list from appointment history in
// first-seen order.
func (s *Service) UniquePatients(ctx context.Context) ([]model.Patient, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	seen := make(map[string]bool)
	patients := []model.Patient{}
	for _, a := range all {
		if seen[a.Patient.ID] {
			continue
		}
		seen[a.Patient.ID] = true
		patients = append(patients, a.Patient)
	}
	return patients, nil
}

// FindPatient looks a patient up by id among those with appointments.
func (s *Service) FindPatient(ctx context.Context, id string) (model.Patient, error) {
	patients, err := s.UniquePatients(ctx)
	if err != nil {
		return model.Patient{}, err
	}
	for _, p := range patients {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Patient{}, apperrors.NotFound("patient", nil)
}

func (s *Service) Cancel(ctx context.Context, id string) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusCancelled, event.AppointmentCancelled)
}

func (s *Service) Complete(ctx context.Context, id string) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusCompleted, event.AppointmentCompleted)
}

// transition moves an upcoming appointment to a final status.
func (s *Service) transition(ctx context.Context, id string, to model.AppointmentStatus, eventType string) (*model.Appointment, error) {
	apt, err := s.repo.Update(ctx, id, func(a *model.Appointment) error {
		if a.Status != model.AppointmentStatusUpcoming {
			return apperrors.Conflict(fmt.Sprintf("appointment is already %s", a.Status), nil)
		}
		a.Status = to
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	s.events.Emit(ctx, eventType, apt)
	return apt, nil
}

func split(all []*model.Appointment) *model.AppointmentList {
	list := &model.AppointmentList{
		Upcoming: []*model.Appointment{},
		Past:     []*model.Appointment{},
	}
	for _, a := range all {
		if a.Status == model.AppointmentStatusUpcoming {
			list.Upcoming = append(list.Upcoming, a)
		} else {
			list.Past = append(list.Past, a)
		}
	}

	sort.SliceStable(list.Upcoming, func(i, j int) bool {
		return list.Upcoming[i].Date < list.Upcoming[j].Date
	})
	sort.SliceStable(list.Past, func(i, j int) bool {
		return list.Past[i].Date > list.Past[j].Date
	})
	return list
}
