package registration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/medlink-api/internal/email"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	"github.com/jwalitptl/medlink-api/internal/service/event"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
	"github.com/jwalitptl/medlink-api/pkg/logger"
)

type Service struct {
	repo   repository.RegistrationRepository
	mailer email.Service
	events event.Emitter
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo repository.RegistrationRepository, mailer email.Service, events event.Emitter, l *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		events: events,
		logger: l,
		now:    time.Now,
	}
}

// Register accepts a doctor's application. A failed acknowledgement email
// is logged; the registration still stands.
func (s *Service) Register(ctx context.Context, req *model.DoctorRegistrationRequest) (*model.DoctorRegistration, error) {
	if len(req.ConsultationTypes) == 0 {
		return nil, apperrors.BadRequest("Please select at least one consultation type.", nil)
	}
	for _, t := range req.ConsultationTypes {
		if !t.Valid() {
			return nil, apperrors.BadRequest(fmt.Sprintf("unknown consultation type %q", t), nil)
		}
	}
	if req.YearsOfExperience < 0 || req.ConsultationFee < 0 {
		return nil, apperrors.BadRequest("Experience and fee cannot be negative.", nil)
	}

	reg := &model.DoctorRegistration{
		FullName:          strings.TrimSpace(req.FullName),
		Email:             strings.TrimSpace(req.Email),
		PhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		Specialty:         strings.TrimSpace(req.Specialty),
		LicenseNumber:     strings.TrimSpace(req.LicenseNumber),
		YearsOfExperience: req.YearsOfExperience,
		ConsultationFee:   req.ConsultationFee,
		ConsultationTypes: append([]model.ConsultationType(nil), req.ConsultationTypes...),
		DocumentName:      strings.TrimSpace(req.DocumentName),
		Status:            model.RegistrationSubmitted,
		SubmittedAt:       s.now().UTC(),
	}
	if reg.FullName == "" || reg.Email == "" || reg.LicenseNumber == "" {
		return nil, apperrors.BadRequest("Please fill in all required fields.", nil)
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if err := s.mailer.SendRegistrationReceived(ctx, reg.Email, reg.FullName); err != nil {
		s.logger.WithContext(ctx).Error(err, "failed to send registration acknowledgement", "registration_id", reg.ID)
	}
	s.events.Emit(ctx, event.DoctorRegistered, reg)
	return reg, nil
}

func (s *Service) List(ctx context.Context) ([]*model.DoctorRegistration, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return list, nil
}
