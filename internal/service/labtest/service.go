package labtest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

const (
	msgTestNameRequired = "Please enter a test name to search."
	msgLocationRequired = "Please allow location access to find labs near you."
)

type Service struct {
	catalog   repository.CatalogRepository
	assistant ai.Assistant
}

func NewService(catalog repository.CatalogRepository, assistant ai.Assistant) *Service {
	return &Service{catalog: catalog, assistant: assistant}
}

func (s *Service) List(ctx context.Context) ([]*model.LabTest, error) {
	tests, err := s.catalog.ListLabTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab tests: %w", err)
	}
	return tests, nil
}

// Search looks for labs near loc offering the named test.
func (s *Service) Search(ctx context.Context, testName string, loc *model.Location) (model.PlaceSearchResult, error) {
	testName = strings.TrimSpace(testName)
	if testName == "" {
		return model.PlaceSearchResult{}, apperrors.BadRequest(msgTestNameRequired, nil)
	}
	if loc == nil {
		return model.PlaceSearchResult{}, apperrors.PreconditionFailed(msgLocationRequired)
	}
	return s.assistant.FindNearbyLabs(ctx, testName, *loc), nil
}
