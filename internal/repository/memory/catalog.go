package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

type catalogRepository struct {
	labTests []*model.LabTest
	plans    []*model.SubscriptionPlan
}

func NewCatalogRepository() repository.CatalogRepository {
	return &catalogRepository{labTests: seedLabTests(), plans: seedPlans()}
}

func (r *catalogRepository) ListLabTests(ctx context.Context) ([]*model.LabTest, error) {
	out := make([]*model.LabTest, 0, len(r.labTests))
	for _, t := range r.labTests {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (r *catalogRepository) ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	out := make([]*model.SubscriptionPlan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, clonePlan(p))
	}
	return out, nil
}

func (r *catalogRepository) GetPlan(ctx context.Context, id string) (*model.SubscriptionPlan, error) {
	for _, p := range r.plans {
		if p.ID == id {
			return clonePlan(p), nil
		}
	}
	return nil, fmt.Errorf("subscription plan %s: %w", id, repository.ErrNotFound)
}

func clonePlan(p *model.SubscriptionPlan) *model.SubscriptionPlan {
	c := *p
	c.Features = append([]string(nil), p.Features...)
	return &c
}

type registrationRepository struct {
	mu            sync.RWMutex
	registrations []*model.DoctorRegistration
}

func NewRegistrationRepository() repository.RegistrationRepository {
	return &registrationRepository{}
}

func (r *registrationRepository) Create(ctx context.Context, registration *model.DoctorRegistration) error {
	if registration.ID == "" {
		registration.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := *registration
	c.ConsultationTypes = append([]model.ConsultationType(nil), registration.ConsultationTypes...)
	r.registrations = append(r.registrations, &c)
	return nil
}

func (r *registrationRepository) List(ctx context.Context) ([]*model.DoctorRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.DoctorRegistration, 0, len(r.registrations))
	for _, reg := range r.registrations {
		c := *reg
		c.ConsultationTypes = append([]model.ConsultationType(nil), reg.ConsultationTypes...)
		out = append(out, &c)
	}
	return out, nil
}
