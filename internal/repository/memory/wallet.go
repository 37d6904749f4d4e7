package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

type insuranceRepository struct {
	mu    sync.RWMutex
	plans []*model.Insurance
}

func NewInsuranceRepository() repository.InsuranceRepository {
	return &insuranceRepository{plans: seedInsurance()}
}

// Create appends; insurance plans list in the order they were added.
func (r *insuranceRepository) Create(ctx context.Context, insurance *model.Insurance) error {
	if insurance.ID == "" {
		insurance.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := *insurance
	r.plans = append(r.plans, &c)
	return nil
}

func (r *insuranceRepository) Get(ctx context.Context, id string) (*model.Insurance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plans {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, fmt.Errorf("insurance %s: %w", id, repository.ErrNotFound)
}

func (r *insuranceRepository) List(ctx context.Context) ([]*model.Insurance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Insurance, 0, len(r.plans))
	for _, p := range r.plans {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *insuranceRepository) Update(ctx context.Context, id string, fn func(*model.Insurance) error) (*model.Insurance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.plans {
		if p.ID != id {
			continue
		}
		updated := *p
		if err := fn(&updated); err != nil {
			return nil, err
		}
		updated.ID = p.ID
		r.plans[i] = &updated
		c := updated
		return &c, nil
	}
	return nil, fmt.Errorf("insurance %s: %w", id, repository.ErrNotFound)
}

func (r *insuranceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.plans {
		if p.ID == id {
			r.plans = append(r.plans[:i:i], r.plans[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("insurance %s: %w", id, repository.ErrNotFound)
}

type walletRepository struct {
	mu     sync.RWMutex
	wallet model.Wallet
}

func NewWalletRepository() repository.WalletRepository {
	return &walletRepository{wallet: *seedWallet()}
}

func (r *walletRepository) Get(ctx context.Context) (*model.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w := r.wallet
	return &w, nil
}

func (r *walletRepository) Update(ctx context.Context, fn func(*model.Wallet) error) (*model.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.wallet
	if err := fn(&w); err != nil {
		return nil, err
	}
	r.wallet = w
	return &w, nil
}
