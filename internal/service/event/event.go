package event

// Domain event types published on the events channel.
const (
	AppointmentBooked    = "appointment.booked"
	AppointmentCancelled = "appointment.cancelled"
	AppointmentCompleted = "appointment.completed"

	PrescriptionIssued   = "prescription.issued"
	PrescriptionOrdered  = "prescription.ordered"
	PrescriptionAdvanced = "prescription.advanced"
	RefillRequested      = "prescription.refill_requested"
	RefillReviewed       = "prescription.refill_reviewed"

	RecordCreated = "record.created"
	RecordDeleted = "record.deleted"

	FundsAdded          = "wallet.funds_added"
	SubscriptionChanged = "wallet.subscription_changed"
	InsuranceChanged    = "wallet.insurance_changed"

	DoctorRegistered = "doctor.registered"
)
