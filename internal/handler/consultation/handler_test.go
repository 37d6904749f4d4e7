package consultation

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/handler/handlertest"
	"github.com/jwalitptl/medlink-api/internal/model"
)

func setup(t *testing.T) (*handlertest.Services, http.Handler, string) {
	t.Helper()
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	h := NewHandler(svcs.Portal)
	h.RegisterRoutes(api)
	h.RegisterSearchRoutes(api)
	return svcs, r, svcs.NewSession(t)
}

func TestPatientConsultation(t *testing.T) {
	_, r, sid := setup(t)

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/messages", sid, map[string]string{"text": "hello"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/join/2", sid, nil)
	assert.Equal(t, http.StatusConflict, resp.Code, "completed appointments cannot be joined")

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/join/1", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var view model.SessionView
	resp.Decode(t, &view)
	assert.Equal(t, model.Screen(model.PageConsultation), view.Screen)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/messages", sid, map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/messages", sid, map[string]string{"text": "I have a headache"})
	require.Equal(t, http.StatusOK, resp.Code)
	resp.Decode(t, &view)
	require.Len(t, view.Session.ConsultationChat, 2)
	assert.Equal(t, model.SenderPatient, view.Session.ConsultationChat[0].Sender)
	assert.Equal(t, model.SenderDoctor, view.Session.ConsultationChat[1].Sender)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/end?prescribe=true", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var ended model.EndCallResult
	resp.Decode(t, &ended)
	assert.Nil(t, ended.Prescription, "patients cannot prescribe")
	assert.Equal(t, model.Screen(model.PageAppointments), ended.Session.Screen)
	assert.Empty(t, ended.Session.Session.ConsultationChat)
}

func TestDoctorConsultationToNotes(t *testing.T) {
	svcs, r, sid := setup(t)
	ctx := context.Background()

	_, err := svcs.Portal.SwitchView(ctx, sid, model.ViewDoctor)
	require.NoError(t, err)

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/join/4", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/messages", sid, map[string]string{"text": "How are you feeling?"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/end?prescribe=true", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var ended model.EndCallResult
	resp.Decode(t, &ended)
	require.NotNil(t, ended.Prescription)
	assert.Contains(t, []string{"Amoxicillin", "Ibuprofen", "Azithromycin"}, ended.Prescription.Medication)
	assert.GreaterOrEqual(t, ended.Prescription.RefillsLeft, 1)
	assert.LessOrEqual(t, ended.Prescription.RefillsLeft, 3)
	assert.Equal(t, "Dr. Evelyn Reed", ended.Prescription.Doctor.Name)
	assert.Equal(t, model.Screen(model.PagePostConsultationSummary), ended.Session.Screen)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/summary", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var summary model.SummaryResult
	resp.Decode(t, &summary)
	assert.Equal(t, "Dr. Evelyn Reed: How are you feeling?\nJane Smith: Thank you doctor, I will follow your advice.", summary.Transcript)
	assert.Equal(t, "Viral URI", summary.Notes.Assessment)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/notes", sid, map[string]interface{}{"notes": summary.Notes})
	require.Equal(t, http.StatusCreated, resp.Code)
	var saved model.SaveNotesResult
	resp.Decode(t, &saved)
	assert.Equal(t, "Consultation Note: 8/18/2024", saved.Record.Title)
	assert.Equal(t, model.RecordTypeConsultationNote, saved.Record.Type)
	assert.Equal(t, model.Screen(model.PageDoctorAppointments), saved.Session.Screen)
	assert.Nil(t, saved.Session.Session.ActiveAppointment)

	records, err := svcs.Records.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.Record.ID, records[0].ID)
}

func TestDiscardSummary(t *testing.T) {
	svcs, r, sid := setup(t)
	_, err := svcs.Portal.SwitchView(context.Background(), sid, model.ViewDoctor)
	require.NoError(t, err)

	handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/join/4", sid, nil)
	handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/end", sid, nil)

	resp := handlertest.Do(t, r, http.MethodDelete, "/api/v1/consultation/summary", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var view model.SessionView
	resp.Decode(t, &view)
	assert.Equal(t, model.Screen(model.PageDoctorAppointments), view.Screen)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/consultation/summary", sid, nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
}
