package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

type medicalRecordRepository struct {
	mu      sync.RWMutex
	records []*model.MedicalRecord
}

func NewMedicalRecordRepository() repository.MedicalRecordRepository {
	r := &medicalRecordRepository{records: seedRecords()}
	sortByDateDesc(r.records)
	return r
}

// sortByDateDesc orders YYYY-MM-DD dates newest first. Equal dates keep
// their relative order, so a record added today lists above older ones
// from the same day.
func sortByDateDesc(records []*model.MedicalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]*model.MedicalRecord{record.Clone()}, r.records...)
	sortByDateDesc(r.records)
	return nil
}

func (r *medicalRecordRepository) Get(ctx context.Context, id string) (*model.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return nil, fmt.Errorf("medical record %s: %w", id, repository.ErrNotFound)
}

func (r *medicalRecordRepository) List(ctx context.Context) ([]*model.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MedicalRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Clone())
	}
	return out, nil
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i:i], r.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("medical record %s: %w", id, repository.ErrNotFound)
}
