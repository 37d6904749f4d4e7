package model

import "time"

type ChatSender string

const (
	SenderPatient ChatSender = "patient"
	SenderDoctor  ChatSender = "doctor"
)

type ConsultationChatMessage struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

// EndCallResult reports where the client lands after hanging up and the
// prescription issued on the way out, if any.
type EndCallResult struct {
	Session      *SessionView  `json:"session"`
	Prescription *Prescription `json:"prescription,omitempty"`
}

type SaveNotesResult struct {
	Session *SessionView   `json:"session"`
	Record  *MedicalRecord `json:"record"`
}
