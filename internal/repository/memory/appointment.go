package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []*model.Appointment
}

// NewAppointmentRepository returns a store seeded with the demo
// appointments, which reference the seeded doctor directory.
func NewAppointmentRepository() repository.AppointmentRepository {
	return &appointmentRepository{appointments: seedAppointments(seedDoctors())}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.appointments {
		if a.ID == appointment.ID {
			return fmt.Errorf("appointment %s already exists", appointment.ID)
		}
	}
	r.appointments = append([]*model.Appointment{appointment.Clone()}, r.appointments...)
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appointments {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id string, fn func(*model.Appointment) error) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.appointments {
		if a.ID != id {
			continue
		}
		updated := a.Clone()
		if err := fn(updated); err != nil {
			return nil, err
		}
		// Doctor and patient are fixed at booking.
		updated.ID = a.ID
		updated.Doctor = a.Doctor
		updated.Patient = a.Patient
		r.appointments[i] = updated
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
}
