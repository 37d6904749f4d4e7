package medical

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
	"github.com/jwalitptl/medlink-api/internal/service/event"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

type Service struct {
	repo   repository.MedicalRecordRepository
	events event.Emitter
	now    func() time.Time
}

func NewService(repo repository.MedicalRecordRepository, events event.Emitter) *Service {
	return &Service{repo: repo, events: events, now: time.Now}
}

// List returns every record, newest first.
func (s *Service) List(ctx context.Context) ([]*model.MedicalRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.MedicalRecord, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("record", err)
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return r, nil
}

// Add stores an uploaded record. Only the file name is kept.
func (s *Service) Add(ctx context.Context, req *model.CreateRecordRequest) (*model.MedicalRecord, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.BadRequest("Please enter a title.", nil)
	}
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return nil, apperrors.BadRequest("Please select a valid date.", err)
	}
	switch req.Type {
	case model.RecordTypePrescription, model.RecordTypeLabResult,
		model.RecordTypeHealthHistory, model.RecordTypeConsultationNote:
	default:
		return nil, apperrors.BadRequest("Please select a record type.", nil)
	}

	return s.create(ctx, &model.MedicalRecord{
		Title:    title,
		Date:     req.Date,
		Type:     req.Type,
		FileName: strings.TrimSpace(req.FileName),
	})
}

// SaveConsultationNote files the doctor's SOAP notes for a finished call,
// dated today.
func (s *Service) SaveConsultationNote(ctx context.Context, apt *model.Appointment, notes model.SOAPNotes) (*model.MedicalRecord, error) {
	if apt == nil {
		return nil, apperrors.Conflict("no active consultation", nil)
	}
	return s.create(ctx, &model.MedicalRecord{
		Title:      "Consultation Note: " + displayDate(apt.Date),
		Date:       s.now().Format(model.DateLayout),
		Type:       model.RecordTypeConsultationNote,
		Notes:      &notes,
		DoctorName: apt.Doctor.Name,
	})
}

func (s *Service) create(ctx context.Context, r *model.MedicalRecord) (*model.MedicalRecord, error) {
	r.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	s.events.Emit(ctx, event.RecordCreated, r)
	return r.Clone(), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("record", err)
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}
	s.events.Emit(ctx, event.RecordDeleted, map[string]string{"id": id})
	return nil
}

// displayDate renders a calendar date the way the portal shows it to
// people, e.g. 10/26/2023. Unparseable dates are returned as is.
func displayDate(date string) string {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("1/2/2006")
}
