package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

// doctorRepository is a read-only directory.
type doctorRepository struct {
	doctors []*model.Doctor
	byID    map[string]*model.Doctor
}

func NewDoctorRepository() repository.DoctorRepository {
	return newDoctorRepository(seedDoctors())
}

func newDoctorRepository(doctors []*model.Doctor) *doctorRepository {
	r := &doctorRepository{
		doctors: doctors,
		byID:    make(map[string]*model.Doctor, len(doctors)),
	}
	for _, d := range doctors {
		r.byID[d.ID] = d
	}
	return r
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d.Clone())
	}
	return out, nil
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s: %w", id, repository.ErrNotFound)
	}
	return d.Clone(), nil
}
