package model

type ConsultationType string

const (
	ConsultationChat  ConsultationType = "chat"
	ConsultationAudio ConsultationType = "audio"
	ConsultationVideo ConsultationType = "video"
)

func (t ConsultationType) Valid() bool {
	switch t {
	case ConsultationChat, ConsultationAudio, ConsultationVideo:
		return true
	}
	return false
}

type Doctor struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Specialty         string             `json:"specialty"`
	Rating            float64            `json:"rating"`
	Reviews           int                `json:"reviews"`
	Location          string             `json:"location"`
	Image             string             `json:"image"`
	Bio               string             `json:"bio"`
	LicenseNumber     string             `json:"license_number"`
	YearsOfExperience int                `json:"years_of_experience"`
	ConsultationFee   float64            `json:"consultation_fee"`
	ConsultationTypes []ConsultationType `json:"consultation_types"`
}

// Offers reports whether the doctor takes consultations of type t.
func (d *Doctor) Offers(t ConsultationType) bool {
	for _, ct := range d.ConsultationTypes {
		if ct == t {
			return true
		}
	}
	return false
}

func (d *Doctor) Ref() DoctorRef {
	return DoctorRef{Name: d.Name, Specialty: d.Specialty}
}

func (d *Doctor) Clone() *Doctor {
	if d == nil {
		return nil
	}
	c := *d
	c.ConsultationTypes = append([]ConsultationType(nil), d.ConsultationTypes...)
	return &c
}

// DoctorRef is the name and specialty snapshot carried by a prescription.
type DoctorRef struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
