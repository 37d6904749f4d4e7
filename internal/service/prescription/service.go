package prescription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	"github.com/jwalitptl/medlink-api/internal/service/event"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

const (
	MsgLocationDenied  = "Location access is denied. Please enable it in your browser settings to find pharmacies."
	MsgLocationMissing = "We need your location to find nearby pharmacies."

	approvedRefills = 3
)

type Service struct {
	repo      repository.PrescriptionRepository
	assistant ai.Assistant
	events    event.Emitter
	metrics   *metrics.Metrics
	now       func() time.Time

	mu        sync.RWMutex
	listeners []func()
}

func NewService(repo repository.PrescriptionRepository, assistant ai.Assistant, events event.Emitter, m *metrics.Metrics) *Service {
	return &Service{
		repo:      repo,
		assistant: assistant,
		events:    events,
		metrics:   m,
		now:       time.Now,
	}
}

// OnOrderPlaced registers fn to run after every successful order. The
// order-progress worker uses it to wake up.
func (s *Service) OnOrderPlaced(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notifyOrderPlaced() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *Service) List(ctx context.Context) ([]*model.Prescription, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Prescription, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, "get")
	}
	return p, nil
}

// RefillQueue lists prescriptions waiting for the doctor's decision.
func (s *Service) RefillQueue(ctx context.Context) ([]*model.Prescription, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	queue := []*model.Prescription{}
	for _, p := range list {
		if p.Status == model.PrescriptionStatusPendingApproval {
			queue = append(queue, p)
		}
	}
	return queue, nil
}

// RequireLocation checks that a location is known before a pharmacy lookup.
func RequireLocation(status model.LocationStatus, loc *model.Location) (model.Location, error) {
	if status == model.LocationDenied {
		return model.Location{}, apperrors.PreconditionFailed(MsgLocationDenied)
	}
	if loc == nil {
		return model.Location{}, apperrors.PreconditionFailed(MsgLocationMissing)
	}
	return *loc, nil
}

// FindPharmacies returns nearby pharmacies for an orderable prescription.
func (s *Service) FindPharmacies(ctx context.Context, id string, status model.LocationStatus, loc *model.Location) (*model.PharmacyOptions, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != model.PrescriptionStatusActive {
		return nil, apperrors.Conflict(fmt.Sprintf("prescription is %s and cannot be ordered", p.Status), nil)
	}
	at, err := RequireLocation(status, loc)
	if err != nil {
		return nil, err
	}

	return &model.PharmacyOptions{
		Prescription: p,
		Search:       s.assistant.FindNearbyPharmacies(ctx, at),
	}, nil
}

// Order sends an active prescription to a pharmacy.
func (s *Service) Order(ctx context.Context, id, pharmacy string) (*model.Prescription, error) {
	pharmacy = strings.TrimSpace(pharmacy)
	if pharmacy == "" {
		return nil, apperrors.BadRequest("Please select a pharmacy.", nil)
	}

	now := s.now().UTC()
	p, err := s.repo.Update(ctx, id, func(p *model.Prescription) error {
		if p.Status != model.PrescriptionStatusActive {
			return apperrors.Conflict(fmt.Sprintf("prescription is %s and cannot be ordered", p.Status), nil)
		}
		p.Status = model.PrescriptionStatusOrderPlaced
		p.Pharmacy = pharmacy
		p.OrderDate = &now
		return nil
	})
	if err != nil {
		return nil, wrapRepoErr(err, "order")
	}

	s.events.Emit(ctx, event.PrescriptionOrdered, p)
	s.notifyOrderPlaced()
	return p, nil
}

// RequestRefill asks the prescribing doctor to renew an expired prescription.
func (s *Service) RequestRefill(ctx context.Context, id string) (*model.Prescription, error) {
	p, err := s.repo.Update(ctx, id, func(p *model.Prescription) error {
		if p.Status != model.PrescriptionStatusExpired {
			return apperrors.Conflict("only expired prescriptions can be refilled", nil)
		}
		p.Status = model.PrescriptionStatusPendingApproval
		return nil
	})
	if err != nil {
		return nil, wrapRepoErr(err, "request refill for")
	}

	s.events.Emit(ctx, event.RefillRequested, p)
	return p, nil
}

// ReviewRefill applies the doctor's decision on a pending refill.
func (s *Service) ReviewRefill(ctx context.Context, id string, decision model.RefillDecision) (*model.Prescription, error) {
	if decision != model.RefillApprove && decision != model.RefillDeny {
		return nil, apperrors.BadRequest("decision must be approve or deny", nil)
	}

	p, err := s.repo.Update(ctx, id, func(p *model.Prescription) error {
		if p.Status != model.PrescriptionStatusPendingApproval {
			return apperrors.Conflict("prescription has no pending refill request", nil)
		}
		if decision == model.RefillApprove {
			p.Status = model.PrescriptionStatusActive
			p.RefillsLeft = approvedRefills
		} else {
			p.Status = model.PrescriptionStatusDenied
			p.RefillsLeft = 0
		}
		return nil
	})
	if err != nil {
		return nil, wrapRepoErr(err, "review refill for")
	}

	s.events.Emit(ctx, event.RefillReviewed, p)
	return p, nil
}

// Issue stores a newly written prescription at the top of the list.
func (s *Service) Issue(ctx context.Context, p *model.Prescription) (*model.Prescription, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}
	s.events.Emit(ctx, event.PrescriptionIssued, p)
	return p.Clone(), nil
}

// NextStatus returns the fulfillment step after status. delivery picks the
// branch out of preparing. ok is false when status is not mid-fulfillment.
func NextStatus(status model.PrescriptionStatus, delivery bool) (next model.PrescriptionStatus, ok bool) {
	switch status {
	case model.PrescriptionStatusOrderPlaced:
		return model.PrescriptionStatusPreparing, true
	case model.PrescriptionStatusPreparing:
		if delivery {
			return model.PrescriptionStatusOutForDelivery, true
		}
		return model.PrescriptionStatusReadyForPickup, true
	case model.PrescriptionStatusReadyForPickup, model.PrescriptionStatusOutForDelivery:
		return model.PrescriptionStatusCompleted, true
	}
	return status, false
}

// AdvanceNext moves the first mid-fulfillment prescription one step along.
// It returns nil when nothing is in fulfillment.
func (s *Service) AdvanceNext(ctx context.Context, delivery func() bool) (*model.Prescription, error) {
	p, err := s.repo.UpdateFirst(ctx,
		func(p *model.Prescription) bool { return p.Status.InFulfillment() },
		func(p *model.Prescription) error {
			next, ok := NextStatus(p.Status, p.Status == model.PrescriptionStatusPreparing && delivery())
			if !ok {
				return fmt.Errorf("prescription %s is not in fulfillment", p.ID)
			}
			p.Status = next
			return nil
		})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to advance prescription: %w", err)
	}

	s.metrics.PrescriptionAdvances.WithLabelValues(string(p.Status)).Inc()
	s.events.Emit(ctx, event.PrescriptionAdvanced, p)
	return p, nil
}

// InFulfillment counts prescriptions between order_placed and completed.
func (s *Service) InFulfillment(ctx context.Context) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range list {
		if p.Status.InFulfillment() {
			n++
		}
	}
	return n, nil
}

func wrapRepoErr(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("prescription", err)
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return fmt.Errorf("failed to %s prescription: %w", action, err)
}
