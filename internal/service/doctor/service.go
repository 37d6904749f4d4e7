package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

const (
	msgSpecialtyRequired = "Please enter a medical specialty."
	msgLocationRequired  = "Please allow location access to find doctors near you."
)

type Service struct {
	repo      repository.DoctorRepository
	assistant ai.Assistant
}

func NewService(repo repository.DoctorRepository, assistant ai.Assistant) *Service {
	return &Service{repo: repo, assistant: assistant}
}

// List returns the directory, narrowed to doctors whose specialty contains
// the filter (case-insensitive) when one is given.
func (s *Service) List(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	filter := strings.ToLower(strings.TrimSpace(specialty))
	if filter == "" {
		return doctors, nil
	}

	matched := make([]*model.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Specialty), filter) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Doctor, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return d, nil
}

// FindNearby searches the map for specialists around loc.
func (s *Service) FindNearby(ctx context.Context, specialty string, loc *model.Location) (model.PlaceSearchResult, error) {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return model.PlaceSearchResult{}, apperrors.BadRequest(msgSpecialtyRequired, nil)
	}
	if loc == nil {
		return model.PlaceSearchResult{}, apperrors.PreconditionFailed(msgLocationRequired)
	}
	return s.assistant.FindNearbySpecialists(ctx, specialty, *loc), nil
}
