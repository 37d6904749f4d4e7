package memory

import "github.com/jwalitptl/medlink-api/internal/model"

// Seed data loaded at startup. Every store is populated from copies of
// these values, so handing them out never aliases store state.

func seedDoctors() []*model.Doctor {
	all := []model.ConsultationType{model.ConsultationVideo, model.ConsultationAudio, model.ConsultationChat}
	return []*model.Doctor{
		{
			ID: "doc1", Name: "Dr. Evelyn Reed", Specialty: "Cardiologist",
			Rating: 4.9, Reviews: 124, Location: "New York, NY",
			Image:             "https://picsum.photos/seed/doc1/200/200",
			Bio:               "Board-certified cardiologist focused on preventive care, hypertension and heart failure management.",
			LicenseNumber:     "NY-MD-448812",
			YearsOfExperience: 15, ConsultationFee: 150,
			ConsultationTypes: all,
		},
		{
			ID: "doc2", Name: "Dr. Samuel Chen", Specialty: "Dermatologist",
			Rating: 4.8, Reviews: 98, Location: "San Francisco, CA",
			Image:             "https://picsum.photos/seed/doc2/200/200",
			Bio:               "Treats acne, eczema and psoriasis, and runs the skin cancer screening clinic.",
			LicenseNumber:     "CA-MD-230971",
			YearsOfExperience: 10, ConsultationFee: 120,
			ConsultationTypes: []model.ConsultationType{model.ConsultationVideo, model.ConsultationChat},
		},
		{
			ID: "doc3", Name: "Dr. Olivia Martinez", Specialty: "Pediatrician",
			Rating: 4.9, Reviews: 210, Location: "Chicago, IL",
			Image:             "https://picsum.photos/seed/doc3/200/200",
			Bio:               "Pediatrician caring for newborns through teenagers, with an interest in childhood asthma.",
			LicenseNumber:     "IL-MD-118204",
			YearsOfExperience: 12, ConsultationFee: 100,
			ConsultationTypes: all,
		},
		{
			ID: "doc4", Name: "Dr. Marcus Johnson", Specialty: "Neurologist",
			Rating: 4.7, Reviews: 76, Location: "Houston, TX",
			Image:             "https://picsum.photos/seed/doc4/200/200",
			Bio:               "Neurologist specialising in migraine, epilepsy and sleep disorders.",
			LicenseNumber:     "TX-MD-603355",
			YearsOfExperience: 18, ConsultationFee: 180,
			ConsultationTypes: []model.ConsultationType{model.ConsultationVideo, model.ConsultationAudio},
		},
		{
			ID: "doc5", Name: "Dr. Priya Patel", Specialty: "General Practitioner",
			Rating: 4.6, Reviews: 154, Location: "Seattle, WA",
			Image:             "https://picsum.photos/seed/doc5/200/200",
			Bio:               "Family doctor for everyday health concerns, chronic disease follow-up and referrals.",
			LicenseNumber:     "WA-MD-774019",
			YearsOfExperience: 8, ConsultationFee: 80,
			ConsultationTypes: all,
		},
		{
			ID: "doc6", Name: "Dr. James Wilson", Specialty: "Orthopedic Surgeon",
			Rating: 4.8, Reviews: 132, Location: "Boston, MA",
			Image:             "https://picsum.photos/seed/doc6/200/200",
			Bio:               "Orthopedic surgeon treating sports injuries and joint pain, with a focus on knees and shoulders.",
			LicenseNumber:     "MA-MD-390266",
			YearsOfExperience: 20, ConsultationFee: 200,
			ConsultationTypes: []model.ConsultationType{model.ConsultationVideo},
		},
	}
}

func seedAppointments(doctors []*model.Doctor) []*model.Appointment {
	alex := model.Patient{ID: "user1", Name: "Alex Doe"}
	jane := model.Patient{ID: "user2", Name: "Jane Smith"}
	return []*model.Appointment{
		{ID: "1", Doctor: *doctors[0].Clone(), Patient: alex, Date: "2024-08-15", Time: "10:30 AM", Status: model.AppointmentStatusUpcoming, ConsultationType: model.ConsultationVideo},
		{ID: "2", Doctor: *doctors[1].Clone(), Patient: alex, Date: "2024-07-20", Time: "02:00 PM", Status: model.AppointmentStatusCompleted, ConsultationType: model.ConsultationChat},
		{ID: "3", Doctor: *doctors[2].Clone(), Patient: alex, Date: "2024-06-10", Time: "11:00 AM", Status: model.AppointmentStatusCompleted, ConsultationType: model.ConsultationAudio},
		{ID: "4", Doctor: *doctors[0].Clone(), Patient: jane, Date: "2024-08-18", Time: "09:00 AM", Status: model.AppointmentStatusUpcoming, ConsultationType: model.ConsultationVideo},
		{ID: "5", Doctor: *doctors[0].Clone(), Patient: jane, Date: "2024-07-22", Time: "03:30 PM", Status: model.AppointmentStatusCompleted, ConsultationType: model.ConsultationChat},
	}
}

func seedPrescriptions() []*model.Prescription {
	reed := model.DoctorRef{Name: "Dr. Evelyn Reed", Specialty: "Cardiologist"}
	chen := model.DoctorRef{Name: "Dr. Samuel Chen", Specialty: "Dermatologist"}
	// The signed-in doctor in doctor mode.
	doe := model.DoctorRef{Name: "Dr. Alex Doe", Specialty: "Cardiologist"}
	return []*model.Prescription{
		{ID: "1", Medication: "Lisinopril", Dosage: "10mg Tablet", Doctor: reed, RefillsLeft: 2, Status: model.PrescriptionStatusActive},
		{ID: "2", Medication: "Metformin", Dosage: "500mg Tablet", Doctor: reed, RefillsLeft: 1, Status: model.PrescriptionStatusActive},
		{ID: "3", Medication: "Atorvastatin", Dosage: "20mg Tablet", Doctor: chen, RefillsLeft: 0, Status: model.PrescriptionStatusExpired},
		{ID: "4", Medication: "Albuterol", Dosage: "90mcg Inhaler", Doctor: doe, RefillsLeft: 0, Status: model.PrescriptionStatusPendingApproval},
		{ID: "5", Medication: "Omeprazole", Dosage: "20mg Capsule", Doctor: doe, RefillsLeft: 0, Status: model.PrescriptionStatusPendingApproval},
	}
}

func seedRecords() []*model.MedicalRecord {
	return []*model.MedicalRecord{
		{ID: "1", Title: "Annual Check-up Results", Date: "2023-10-15", Type: model.RecordTypeLabResult, FileName: "lab_results_2023.pdf"},
		{ID: "2", Title: "Amoxicillin Prescription", Date: "2023-09-22", Type: model.RecordTypePrescription, FileName: "amoxicillin_rx.pdf"},
		{ID: "3", Title: "Allergy Test Report", Date: "2023-08-01", Type: model.RecordTypeLabResult, FileName: "allergy_report.pdf"},
		{ID: "4", Title: "Cardiology Consultation Notes", Date: "2023-07-19", Type: model.RecordTypeHealthHistory, FileName: "cardio_notes.pdf"},
	}
}

func seedInsurance() []*model.Insurance {
	return []*model.Insurance{
		{ID: "1", Provider: "Blue Cross Blue Shield", PolicyNumber: "XG123456789", DocumentName: "insurance_card.pdf"},
	}
}

func seedWallet() *model.Wallet {
	return &model.Wallet{Balance: 75.50, Subscription: "ind_monthly"}
}

func seedLabTests() []*model.LabTest {
	return []*model.LabTest{
		{ID: "lt1", Name: "Complete Blood Count (CBC)", Category: "Hematology", Description: "Measures different components of your blood, including red and white blood cells."},
		{ID: "lt2", Name: "Basic Metabolic Panel (BMP)", Category: "Chemistry", Description: "Checks levels of glucose, calcium, and electrolytes in your blood."},
		{ID: "lt3", Name: "Lipid Panel", Category: "Chemistry", Description: "Measures cholesterol and other fats in your blood to assess heart disease risk."},
		{ID: "lt4", Name: "Thyroid Stimulating Hormone (TSH)", Category: "Hormone", Description: "Screens for and monitors thyroid disorders."},
		{ID: "lt5", Name: "Hemoglobin A1c (HbA1c)", Category: "Chemistry", Description: "Monitors long-term blood sugar control in people with diabetes."},
		{ID: "lt6", Name: "Urinalysis", Category: "Microbiology", Description: "Examines urine for signs of common health problems, such as kidney disease or UTIs."},
	}
}

func seedPlans() []*model.SubscriptionPlan {
	return []*model.SubscriptionPlan{
		{ID: "ind_weekly", Name: "Weekly Plan", Price: 7.99, Period: model.PlanPeriodWeek, Type: model.PlanTypeIndividual,
			Features: []string{"Unlimited Chat Consultations", "1 Video Call/week", "5% off prescriptions"}},
		{ID: "ind_monthly", Name: "Monthly Plan", Price: 19.99, Period: model.PlanPeriodMonth, Type: model.PlanTypeIndividual, Popular: true,
			Features: []string{"Unlimited Chat Consultations", "4 Video Calls/month", "10% off prescriptions", "Priority Support"}},
		{ID: "ind_yearly", Name: "Yearly Plan", Price: 199.99, Period: model.PlanPeriodYear, Type: model.PlanTypeIndividual,
			Features: []string{"Unlimited Chat & Video Calls", "20% off prescriptions", "Priority Support", "Annual Health Check-up"}},
		{ID: "corp_weekly", Name: "Weekly Pass", Price: 59.99, Period: model.PlanPeriodWeek, Type: model.PlanTypeCorporate,
			Features: []string{"For teams up to 10 members", "Unlimited Chat Consultations", "5 team video calls/week"}},
		{ID: "corp_monthly", Name: "Business Monthly", Price: 249.99, Period: model.PlanPeriodMonth, Type: model.PlanTypeCorporate, Popular: true,
			Features: []string{"For teams up to 25 members", "Unlimited Chat Consultations", "20 team video calls/month", "Dedicated Account Manager"}},
		{ID: "corp_yearly", Name: "Enterprise Yearly", Price: 2499.99, Period: model.PlanPeriodYear, Type: model.PlanTypeCorporate,
			Features: []string{"For teams up to 50 members", "Unlimited Chat & Video Calls", "On-site Health Workshops", "Advanced Analytics Dashboard"}},
	}
}
