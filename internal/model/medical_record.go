package model

import "time"

type RecordType string

const (
	RecordTypePrescription     RecordType = "prescription"
	RecordTypeLabResult        RecordType = "lab_result"
	RecordTypeHealthHistory    RecordType = "health_history"
	RecordTypeConsultationNote RecordType = "consultation_note"
)

// Label renders the type for people, e.g. "Lab Result".
func (t RecordType) Label() string {
	switch t {
	case RecordTypePrescription:
		return "Prescription"
	case RecordTypeLabResult:
		return "Lab Result"
	case RecordTypeHealthHistory:
		return "Health History"
	case RecordTypeConsultationNote:
		return "Consultation Note"
	}
	return string(t)
}

// SOAPNotes is a clinical summary in Subjective/Objective/Assessment/Plan form.
type SOAPNotes struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

type MedicalRecord struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Type       RecordType `json:"type"`
	FileName   string     `json:"file_name,omitempty"`
	Notes      *SOAPNotes `json:"notes,omitempty"`
	DoctorName string     `json:"doctor_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (r *MedicalRecord) Clone() *MedicalRecord {
	if r == nil {
		return nil
	}
	c := *r
	if r.Notes != nil {
		n := *r.Notes
		c.Notes = &n
	}
	return &c
}

type CreateRecordRequest struct {
	Title    string     `json:"title" binding:"required,notblank"`
	Date     string     `json:"date" binding:"required,datetime=2006-01-02"`
	Type     RecordType `json:"type" binding:"required,oneof=prescription lab_result health_history consultation_note"`
	FileName string     `json:"file_name"`
}

type SaveNotesRequest struct {
	Notes SOAPNotes `json:"notes"`
}
