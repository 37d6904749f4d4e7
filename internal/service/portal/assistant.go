package portal

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/prescription"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
)

func (s *Service) SetLocation(ctx context.Context, id string, loc model.Location) (*model.SessionView, error) {
	return s.update(ctx, id, func(sess *model.Session) error {
		sess.Location = &loc
		sess.LocationStatus = model.LocationSuccess
		return nil
	})
}

func (s *Service) DenyLocation(ctx context.Context, id string) (*model.SessionView, error) {
	return s.update(ctx, id, func(sess *model.Session) error {
		sess.Location = nil
		sess.LocationStatus = model.LocationDenied
		return nil
	})
}

// RequestLocation marks the session as waiting for the client to supply
// coordinates. A known location is left alone.
func (s *Service) RequestLocation(ctx context.Context, id string) (*model.SessionView, error) {
	return s.update(ctx, id, func(sess *model.Session) error {
		if sess.LocationStatus != model.LocationSuccess {
			sess.LocationStatus = model.LocationPending
		}
		return nil
	})
}

func (s *Service) location(ctx context.Context, id string) (*model.Session, *model.Location, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, sessionErr(err)
	}
	return sess, sess.Location, nil
}

func (s *Service) FindSpecialists(ctx context.Context, id, specialty string) (model.PlaceSearchResult, error) {
	_, loc, err := s.location(ctx, id)
	if err != nil {
		return model.PlaceSearchResult{}, err
	}
	return s.Doctors.FindNearby(ctx, specialty, loc)
}

func (s *Service) FindLabs(ctx context.Context, id, testName string) (model.PlaceSearchResult, error) {
	_, loc, err := s.location(ctx, id)
	if err != nil {
		return model.PlaceSearchResult{}, err
	}
	return s.Labs.Search(ctx, testName, loc)
}

// FindPharmacies looks up pharmacies for a prescription. When no location
// is known yet the session is flagged as waiting for one.
func (s *Service) FindPharmacies(ctx context.Context, id, prescriptionID string) (*model.PharmacyOptions, error) {
	sess, loc, err := s.location(ctx, id)
	if err != nil {
		return nil, err
	}

	opts, err := s.Prescriptions.FindPharmacies(ctx, prescriptionID, sess.LocationStatus, loc)
	if apperrors.HasCode(err, apperrors.ErrPrecondition) && sess.LocationStatus != model.LocationDenied {
		if _, uerr := s.RequestLocation(ctx, id); uerr != nil {
			return nil, uerr
		}
	}
	return opts, err
}

// OrderPrescription places the order once a pharmacy has been picked.
func (s *Service) OrderPrescription(ctx context.Context, id, prescriptionID, pharmacy string) (*model.Prescription, error) {
	sess, loc, err := s.location(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := prescription.RequireLocation(sess.LocationStatus, loc); err != nil {
		return nil, err
	}
	return s.Prescriptions.Order(ctx, prescriptionID, pharmacy)
}

// SymptomCheck sends a message to the triage assistant with the session's
// earlier turns as history and returns the updated conversation. The
// question and its answer are appended together so concurrent messages
// never interleave.
func (s *Service) SymptomCheck(ctx context.Context, id, message string) ([]model.SymptomChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.BadRequest("Message cannot be empty.", nil)
	}

	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, sessionErr(err)
	}
	history := make([]model.ChatTurn, 0, len(sess.SymptomChat))
	for _, m := range sess.SymptomChat {
		role := "user"
		if m.Sender == model.SymptomSenderBot {
			role = "model"
		}
		history = append(history, model.ChatTurn{Role: role, Text: m.Text})
	}
	asked := s.now().UTC()

	reply := s.Assistant.SymptomCheck(ctx, history, message)

	view, err := s.update(ctx, id, func(sess *model.Session) error {
		sess.SymptomChat = append(sess.SymptomChat,
			model.SymptomChatMessage{ID: uuid.New().String(), Text: message, Sender: model.SymptomSenderUser, Timestamp: asked},
			model.SymptomChatMessage{ID: uuid.New().String(), Text: reply, Sender: model.SymptomSenderBot, Timestamp: s.now().UTC()},
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view.Session.SymptomChat, nil
}

func (s *Service) ResetSymptomChat(ctx context.Context, id string) (*model.SessionView, error) {
	return s.update(ctx, id, func(sess *model.Session) error {
		sess.SymptomChat = []model.SymptomChatMessage{}
		return nil
	})
}
