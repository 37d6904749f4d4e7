package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository"
)

func TestAppointmentCreatePrepends(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository()

	appt := &model.Appointment{Patient: model.Patient{ID: "user1", Name: "Alex Doe"}, Date: "2024-09-01", Status: model.AppointmentStatusUpcoming}
	require.NoError(t, repo.Create(ctx, appt))
	assert.NotEmpty(t, appt.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, appt.ID, all[0].ID)
}

func TestAppointmentUpdateKeepsParticipants(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository()

	updated, err := repo.Update(ctx, "1", func(a *model.Appointment) error {
		a.Status = model.AppointmentStatusCancelled
		a.Patient = model.Patient{ID: "intruder"}
		a.Doctor.Name = "Someone Else"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, updated.Status)
	assert.Equal(t, "user1", updated.Patient.ID)
	assert.Equal(t, "Dr. Evelyn Reed", updated.Doctor.Name)

	_, err = repo.Update(ctx, "nope", func(*model.Appointment) error { return nil })
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPrescriptionRepository()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Status = model.PrescriptionStatusCompleted

	p, err := repo.Get(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.PrescriptionStatusActive, p.Status)
}

func TestPrescriptionUpdateFirstUsesListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPrescriptionRepository()

	got, err := repo.UpdateFirst(ctx,
		func(p *model.Prescription) bool { return p.Status == model.PrescriptionStatusPendingApproval },
		func(p *model.Prescription) error { p.Status = model.PrescriptionStatusDenied; return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, "4", got.ID)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "5", func(*model.Prescription) error { return boom })
	assert.ErrorIs(t, err, boom)

	p, err := repo.Get(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, model.PrescriptionStatusPendingApproval, p.Status)

	_, err = repo.UpdateFirst(ctx, func(*model.Prescription) bool { return false }, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordsStaySortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicalRecordRepository()

	require.NoError(t, repo.Create(ctx, &model.MedicalRecord{Title: "Mid", Date: "2023-09-01", Type: model.RecordTypeLabResult}))
	require.NoError(t, repo.Create(ctx, &model.MedicalRecord{Title: "New", Date: "2024-01-05", Type: model.RecordTypeLabResult}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Date, list[i].Date)
	}
	assert.Equal(t, "New", list[0].Title)
}

func TestRecordDeleteRemovesOnlyThatID(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicalRecordRepository()

	require.NoError(t, repo.Delete(ctx, "2"))
	list, err := repo.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "3", "4"}, ids)
	assert.ErrorIs(t, repo.Delete(ctx, "2"), repository.ErrNotFound)
}

func TestInsuranceCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewInsuranceRepository()

	ins := &model.Insurance{Provider: "Aetna", PolicyNumber: "AE99887766"}
	require.NoError(t, repo.Create(ctx, ins))

	updated, err := repo.Update(ctx, ins.ID, func(i *model.Insurance) error {
		i.DocumentName = "aetna_card.png"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "aetna_card.png", updated.DocumentName)

	require.NoError(t, repo.Delete(ctx, "1"))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ins.ID, list[0].ID)
}

func TestWalletUpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewWalletRepository()

	_, err := repo.Update(ctx, func(w *model.Wallet) error {
		w.Balance = 0
		return errors.New("rejected")
	})
	assert.Error(t, err)

	w, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 75.50, w.Balance, 0.001)
	assert.Equal(t, "ind_monthly", w.Subscription)
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	tests, err := repo.ListLabTests(ctx)
	require.NoError(t, err)
	assert.Len(t, tests, 6)

	plan, err := repo.GetPlan(ctx, "corp_monthly")
	require.NoError(t, err)
	assert.True(t, plan.Popular)
	assert.Equal(t, model.PlanTypeCorporate, plan.Type)

	_, err = repo.GetPlan(ctx, "gold")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Minute, time.Minute)

	s := &model.Session{View: model.ViewPatient, ActivePage: model.PageDashboard}
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, 1, repo.Count())

	updated, err := repo.Update(ctx, s.ID, func(s *model.Session) error {
		s.ActivePage = model.PageWallet
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.PageWallet, updated.ActivePage)

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PageWallet, got.ActivePage)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionKeepsEmptyChats(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Minute, time.Minute)

	s := &model.Session{
		View:             model.ViewPatient,
		ConsultationChat: []model.ConsultationChatMessage{},
		SymptomChat:      []model.SymptomChatMessage{},
	}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"consultation_chat":[]`)
	assert.Contains(t, string(raw), `"symptom_chat":[]`)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(10*time.Millisecond, time.Hour)

	s := &model.Session{View: model.ViewPatient}
	require.NoError(t, repo.Create(ctx, s))
	time.Sleep(30 * time.Millisecond)

	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDoctorDirectory(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository()

	doctors, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, doctors)

	d, err := repo.Get(ctx, doctors[0].ID)
	require.NoError(t, err)
	assert.Equal(t, doctors[0].Name, d.Name)

	_, err = repo.Get(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
