package model

type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PatientProfile is what a doctor sees after selecting a patient.
type PatientProfile struct {
	Patient      Patient          `json:"patient"`
	Appointments []*Appointment   `json:"appointments"`
	Records      []*MedicalRecord `json:"records"`
}
