package wallet

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	"github.com/jwalitptl/medlink-api/internal/service/event"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

const (
	msgInvalidAmount   = "Please enter a valid amount."
	msgInvalidPlatform = "Please select a payment platform."
)

type Service struct {
	wallets   repository.WalletRepository
	insurance repository.InsuranceRepository
	catalog   repository.CatalogRepository
	events    event.Emitter
}

func NewService(wallets repository.WalletRepository, insurance repository.InsuranceRepository, catalog repository.CatalogRepository, events event.Emitter) *Service {
	return &Service{
		wallets:   wallets,
		insurance: insurance,
		catalog:   catalog,
		events:    events,
	}
}

// Overview gathers the wallet screen: balance, masked insurance, plans of
// the requested type and the accepted payment platforms.
func (s *Service) Overview(ctx context.Context, planType model.PlanType) (*model.WalletOverview, error) {
	w, err := s.wallets.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	ins, err := s.ListInsurance(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.Plans(ctx, planType)
	if err != nil {
		return nil, err
	}

	return &model.WalletOverview{
		Wallet:    *w,
		Insurance: ins,
		Plans:     plans,
		Platforms: append([]string(nil), model.PaymentPlatforms...),
	}, nil
}

func (s *Service) AddFunds(ctx context.Context, req *model.AddFundsRequest) (*model.Wallet, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, apperrors.BadRequest(msgInvalidAmount, nil)
	}
	if !validPlatform(req.Platform) {
		return nil, apperrors.BadRequest(msgInvalidPlatform, nil)
	}

	w, err := s.wallets.Update(ctx, func(w *model.Wallet) error {
		w.Balance = math.Round((w.Balance+req.Amount)*100) / 100
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add funds: %w", err)
	}

	s.events.Emit(ctx, event.FundsAdded, map[string]interface{}{
		"amount":   req.Amount,
		"platform": req.Platform,
		"balance":  w.Balance,
	})
	return w, nil
}

func validPlatform(p string) bool {
	for _, known := range model.PaymentPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// Plans lists subscription plans of one type; an empty type means individual.
func (s *Service) Plans(ctx context.Context, planType model.PlanType) ([]model.SubscriptionPlan, error) {
	if planType == "" {
		planType = model.PlanTypeIndividual
	}
	if planType != model.PlanTypeIndividual && planType != model.PlanTypeCorporate {
		return nil, apperrors.BadRequest("plan type must be individual or corporate", nil)
	}

	all, err := s.catalog.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	plans := []model.SubscriptionPlan{}
	for _, p := range all {
		if p.Type == planType {
			plans = append(plans, *p)
		}
	}
	return plans, nil
}

func (s *Service) Subscribe(ctx context.Context, planID string) (*model.Wallet, error) {
	plan, err := s.catalog.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("plan", err)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	w, err := s.wallets.Update(ctx, func(w *model.Wallet) error {
		w.Subscription = plan.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	s.events.Emit(ctx, event.SubscriptionChanged, map[string]string{"plan_id": plan.ID})
	return w, nil
}

func (s *Service) ListInsurance(ctx context.Context) ([]model.Insurance, error) {
	list, err := s.insurance.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance: %w", err)
	}
	out := make([]model.Insurance, 0, len(list))
	for _, i := range list {
		out = append(out, i.Masked())
	}
	return out, nil
}

func (s *Service) GetInsurance(ctx context.Context, id string) (*model.Insurance, error) {
	i, err := s.insurance.Get(ctx, id)
	if err != nil {
		return nil, wrapInsuranceErr(err, "get")
	}
	masked := i.Masked()
	return &masked, nil
}

func (s *Service) AddInsurance(ctx context.Context, req *model.InsuranceRequest) (*model.Insurance, error) {
	i, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.insurance.Create(ctx, i); err != nil {
		return nil, fmt.Errorf("failed to create insurance: %w", err)
	}
	return s.insuranceChanged(ctx, "created", i), nil
}

func (s *Service) UpdateInsurance(ctx context.Context, id string, req *model.InsuranceRequest) (*model.Insurance, error) {
	in, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	i, err := s.insurance.Update(ctx, id, func(i *model.Insurance) error {
		i.Provider = in.Provider
		i.PolicyNumber = in.PolicyNumber
		i.DocumentName = in.DocumentName
		return nil
	})
	if err != nil {
		return nil, wrapInsuranceErr(err, "update")
	}
	return s.insuranceChanged(ctx, "updated", i), nil
}

func (s *Service) DeleteInsurance(ctx context.Context, id string) error {
	if err := s.insurance.Delete(ctx, id); err != nil {
		return wrapInsuranceErr(err, "delete")
	}
	s.events.Emit(ctx, event.InsuranceChanged, map[string]string{"id": id, "action": "deleted"})
	return nil
}

func (s *Service) insuranceChanged(ctx context.Context, action string, i *model.Insurance) *model.Insurance {
	masked := i.Masked()
	s.events.Emit(ctx, event.InsuranceChanged, map[string]string{
		"id":       masked.ID,
		"provider": masked.Provider,
		"action":   action,
	})
	return &masked
}

func fromRequest(req *model.InsuranceRequest) (*model.Insurance, error) {
	provider := strings.TrimSpace(req.Provider)
	policy := strings.TrimSpace(req.PolicyNumber)
	if provider == "" || policy == "" {
		return nil, apperrors.BadRequest("Please fill in the provider and policy number.", nil)
	}
	return &model.Insurance{
		Provider:     provider,
		PolicyNumber: policy,
		DocumentName: strings.TrimSpace(req.DocumentName),
	}, nil
}

func wrapInsuranceErr(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("insurance", err)
	}
	return fmt.Errorf("failed to %s insurance: %w", action, err)
}
