package repository

import (
	"context"
	"errors"

	"github.com/jwalitptl/medlink-api/internal/model"
)

// ErrNotFound is returned when no entity has the requested id.
var ErrNotFound = errors.New("not found")

// All repository interfaces in one file. Update methods apply fn to the
// stored entity under the store's write lock; an error from fn aborts the
// update and is returned unchanged.
type (
	DoctorRepository interface {
		List(ctx context.Context) ([]*model.Doctor, error)
		Get(ctx context.Context, id string) (*model.Doctor, error)
	}

	AppointmentRepository interface {
		// Create prepends the appointment, assigning an id when empty.
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id string) (*model.Appointment, error)
		List(ctx context.Context) ([]*model.Appointment, error)
		Update(ctx context.Context, id string, fn func(*model.Appointment) error) (*model.Appointment, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
		Get(ctx context.Context, id string) (*model.Prescription, error)
		List(ctx context.Context) ([]*model.Prescription, error)
		Update(ctx context.Context, id string, fn func(*model.Prescription) error) (*model.Prescription, error)
		// UpdateFirst applies fn to the first prescription, in list order,
		// for which match returns true. ErrNotFound when none match.
		UpdateFirst(ctx context.Context, match func(*model.Prescription) bool, fn func(*model.Prescription) error) (*model.Prescription, error)
	}

	MedicalRecordRepository interface {
		// Create inserts the record keeping the list sorted by date, newest first.
		Create(ctx context.Context, record *model.MedicalRecord) error
		Get(ctx context.Context, id string) (*model.MedicalRecord, error)
		List(ctx context.Context) ([]*model.MedicalRecord, error)
		Delete(ctx context.Context, id string) error
	}

	InsuranceRepository interface {
		Create(ctx context.Context, insurance *model.Insurance) error
		Get(ctx context.Context, id string) (*model.Insurance, error)
		List(ctx context.Context) ([]*model.Insurance, error)
		Update(ctx context.Context, id string, fn func(*model.Insurance) error) (*model.Insurance, error)
		Delete(ctx context.Context, id string) error
	}

	WalletRepository interface {
		Get(ctx context.Context) (*model.Wallet, error)
		Update(ctx context.Context, fn func(*model.Wallet) error) (*model.Wallet, error)
	}

	CatalogRepository interface {
		ListLabTests(ctx context.Context) ([]*model.LabTest, error)
		ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error)
		GetPlan(ctx context.Context, id string) (*model.SubscriptionPlan, error)
	}

	SessionRepository interface {
		Create(ctx context.Context, session *model.Session) error
		Get(ctx context.Context, id string) (*model.Session, error)
		Update(ctx context.Context, id string, fn func(*model.Session) error) (*model.Session, error)
		Count() int
	}

	RegistrationRepository interface {
		Create(ctx context.Context, registration *model.DoctorRegistration) error
		List(ctx context.Context) ([]*model.DoctorRegistration, error)
	}
)
