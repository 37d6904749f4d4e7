package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/navigation"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

// JoinCall opens the consultation room for an upcoming appointment.
func (s *Service) JoinCall(ctx context.Context, id, appointmentID string) (*model.SessionView, error) {
	apt, err := s.Appointments.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if apt.Status != model.AppointmentStatusUpcoming {
		return nil, apperrors.Conflict(fmt.Sprintf("appointment is %s", apt.Status), nil)
	}
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.JoinCall(sess, apt)
		return nil
	})
}

// SendMessage posts to the consultation chat as the session's party and
// appends the other party's canned reply.
func (s *Service) SendMessage(ctx context.Context, id, text string) (*model.SessionView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.BadRequest("Message cannot be empty.", nil)
	}

	return s.update(ctx, id, func(sess *model.Session) error {
		if sess.ActiveAppointment == nil || sess.ActivePage != model.PageConsultation {
			return errNoConsultation
		}

		sender, replier, reply := model.SenderPatient, model.SenderDoctor, patientReply
		if sess.DoctorMode() {
			sender, replier, reply = model.SenderDoctor, model.SenderPatient, doctorReply
		}

		now := s.now().UTC()
		sess.ConsultationChat = append(sess.ConsultationChat,
			model.ConsultationChatMessage{ID: uuid.New().String(), Text: text, Sender: sender, Timestamp: now},
			model.ConsultationChatMessage{ID: uuid.New().String(), Text: reply, Sender: replier, Timestamp: now},
		)
		return nil
	})
}

// EndCall hangs up. With prescribe set, a doctor also issues a prescription
// for the patient on the way out. Only the request that actually leaves
// the consultation page prescribes.
func (s *Service) EndCall(ctx context.Context, id string, prescribe bool) (*model.EndCallResult, error) {
	var apt *model.Appointment
	view, err := s.update(ctx, id, func(sess *model.Session) error {
		if prescribe && sess.DoctorMode() && sess.ActivePage == model.PageConsultation && sess.ActiveAppointment != nil {
			apt = sess.ActiveAppointment.Clone()
		}
		navigation.EndCall(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &model.EndCallResult{Session: view}
	if apt != nil {
		p, err := s.Prescriptions.Issue(ctx, s.endOfCallPrescription(apt))
		if err != nil {
			return nil, err
		}
		result.Prescription = p
	}
	return result, nil
}

func (s *Service) endOfCallPrescription(apt *model.Appointment) *model.Prescription {
	s.randMu.Lock()
	med := endOfCallMedications[s.Rand.Intn(len(endOfCallMedications))]
	refills := s.Rand.Intn(3) + 1
	s.randMu.Unlock()

	return &model.Prescription{
		Medication:  med.name,
		Dosage:      med.dosage,
		Doctor:      apt.Doctor.Ref(),
		RefillsLeft: refills,
		Status:      model.PrescriptionStatusActive,
	}
}

// Transcript renders the consultation chat one "<name>: <text>" line per
// message.
func Transcript(apt *model.Appointment, chat []model.ConsultationChatMessage) string {
	lines := make([]string, 0, len(chat))
	for _, m := range chat {
		name := apt.Patient.Name
		if m.Sender == model.SenderDoctor {
			name = apt.Doctor.Name
		}
		lines = append(lines, name+": "+m.Text)
	}
	return strings.Join(lines, "\n")
}

// Summarize drafts SOAP notes from the finished call's transcript.
func (s *Service) Summarize(ctx context.Context, id string) (*model.SummaryResult, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, sessionErr(err)
	}
	if !sess.DoctorMode() || sess.ActiveAppointment == nil {
		return nil, errNoConsultation
	}

	transcript := Transcript(sess.ActiveAppointment, sess.ConsultationChat)
	return &model.SummaryResult{
		Transcript: transcript,
		Notes:      s.Assistant.SummarizeConsultation(ctx, transcript),
	}, nil
}

// SaveNotes files the notes as a consultation record and closes the call.
func (s *Service) SaveNotes(ctx context.Context, id string, notes model.SOAPNotes) (*model.SaveNotesResult, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, sessionErr(err)
	}
	if sess.ActiveAppointment == nil {
		return nil, errNoConsultation
	}

	record, err := s.Records.SaveConsultationNote(ctx, sess.ActiveAppointment, notes)
	if err != nil {
		return nil, err
	}
	view, err := s.update(ctx, id, func(sess *model.Session) error {
		navigation.FinishConsultation(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &model.SaveNotesResult{Session: view, Record: record}, nil
}

// DiscardSummary leaves the summary screen without saving anything.
func (s *Service) DiscardSummary(ctx context.Context, id string) (*model.SessionView, error) {
	return s.update(ctx, id, func(sess *model.Session) error {
		navigation.FinishConsultation(sess)
		return nil
	})
}
