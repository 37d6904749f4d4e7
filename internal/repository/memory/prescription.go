package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

type prescriptionRepository struct {
	mu            sync.RWMutex
	prescriptions []*model.Prescription
}

func NewPrescriptionRepository() repository.PrescriptionRepository {
	return &prescriptionRepository{prescriptions: seedPrescriptions()}
}

// Create prepends, so newly issued prescriptions list first.
func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	if prescription.ID == "" {
		prescription.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prescriptions = append([]*model.Prescription{prescription.Clone()}, r.prescriptions...)
	return nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id string) (*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.prescriptions {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, fmt.Errorf("prescription %s: %w", id, repository.ErrNotFound)
}

func (r *prescriptionRepository) List(ctx context.Context) ([]*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Prescription, 0, len(r.prescriptions))
	for _, p := range r.prescriptions {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, id string, fn func(*model.Prescription) error) (*model.Prescription, error) {
	return r.UpdateFirst(ctx, func(p *model.Prescription) bool { return p.ID == id }, fn)
}

func (r *prescriptionRepository) UpdateFirst(ctx context.Context, match func(*model.Prescription) bool, fn func(*model.Prescription) error) (*model.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.prescriptions {
		if !match(p) {
			continue
		}
		updated := p.Clone()
		if err := fn(updated); err != nil {
			return nil, err
		}
		updated.ID = p.ID
		r.prescriptions[i] = updated
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("prescription: %w", repository.ErrNotFound)
}
