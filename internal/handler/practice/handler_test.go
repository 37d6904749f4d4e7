package practice

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/handler/handlertest"
	"github.com/jwalitptl/medlink-api/internal/model"
)

func setup() http.Handler {
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	NewHandler(svcs.Appointments, svcs.Prescriptions).RegisterRoutes(api)
	return r
}

func TestListPatientsIsUnique(t *testing.T) {
	r := setup()

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/practice/patients", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var patients []model.Patient
	resp.Decode(t, &patients)
	require.Len(t, patients, 2)
	assert.Equal(t, "Alex Doe", patients[0].Name)
	assert.Equal(t, "Jane Smith", patients[1].Name)
}

func TestRefillReview(t *testing.T) {
	r := setup()

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/practice/refills", "", nil)
	var queue []model.Prescription
	resp.Decode(t, &queue)
	require.Len(t, queue, 2)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/practice/refills/4/review", "", map[string]string{"decision": "approve"})
	require.Equal(t, http.StatusOK, resp.Code)
	var p model.Prescription
	resp.Decode(t, &p)
	assert.Equal(t, model.PrescriptionStatusActive, p.Status)
	assert.Equal(t, 3, p.RefillsLeft)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/practice/refills/5/review", "", map[string]string{"decision": "deny"})
	require.Equal(t, http.StatusOK, resp.Code)
	resp.Decode(t, &p)
	assert.Equal(t, model.PrescriptionStatusDenied, p.Status)
	assert.Equal(t, 0, p.RefillsLeft)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/practice/refills/4/review", "", map[string]string{"decision": "deny"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/practice/refills/1/review", "", map[string]string{"decision": "maybe"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/practice/refills", "", nil)
	resp.Decode(t, &queue)
	assert.Empty(t, queue)
}
