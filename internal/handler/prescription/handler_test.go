package prescription

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/handler/handlertest"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/prescription"
)

func setup(t *testing.T) (*handlertest.Services, http.Handler, string) {
	t.Helper()
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	h := NewHandler(svcs.Prescriptions, svcs.Portal)
	h.RegisterRoutes(api)
	h.RegisterSearchRoutes(api)
	return svcs, r, svcs.NewSession(t)
}

func TestListAndGet(t *testing.T) {
	_, r, _ := setup(t)

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/prescriptions", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []model.Prescription
	resp.Decode(t, &list)
	assert.Len(t, list, 5)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/prescriptions/2", "", nil)
	var p model.Prescription
	resp.Decode(t, &p)
	assert.Equal(t, "Metformin", p.Medication)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/prescriptions/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPharmacyLookupNeedsLocation(t *testing.T) {
	svcs, r, sid := setup(t)
	ctx := context.Background()

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/pharmacies", sid, nil)
	assert.Equal(t, http.StatusPreconditionFailed, resp.Code)
	assert.Equal(t, prescription.MsgLocationMissing, resp.Message)

	view, err := svcs.Portal.View(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, model.LocationPending, view.Session.LocationStatus)

	_, err = svcs.Portal.DenyLocation(ctx, sid)
	require.NoError(t, err)
	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/pharmacies", sid, nil)
	assert.Equal(t, http.StatusPreconditionFailed, resp.Code)
	assert.Equal(t, prescription.MsgLocationDenied, resp.Message)

	_, err = svcs.Portal.SetLocation(ctx, sid, model.Location{Latitude: 40.7, Longitude: -74})
	require.NoError(t, err)
	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/pharmacies", sid, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var opts model.PharmacyOptions
	resp.Decode(t, &opts)
	assert.Equal(t, "1", opts.Prescription.ID)
	assert.Len(t, opts.Search.Places(), 1)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/3/pharmacies", sid, nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestOrderPrescription(t *testing.T) {
	svcs, r, sid := setup(t)

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/order", sid, map[string]string{"pharmacy": "Downtown Care"})
	assert.Equal(t, http.StatusPreconditionFailed, resp.Code)

	_, err := svcs.Portal.SetLocation(context.Background(), sid, model.Location{Latitude: 40.7, Longitude: -74})
	require.NoError(t, err)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/order", sid, map[string]string{"pharmacy": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/order", sid, map[string]string{"pharmacy": "Downtown Care"})
	require.Equal(t, http.StatusOK, resp.Code)
	var p model.Prescription
	resp.Decode(t, &p)
	assert.Equal(t, model.PrescriptionStatusOrderPlaced, p.Status)
	assert.Equal(t, "Downtown Care", p.Pharmacy)
	assert.NotNil(t, p.OrderDate)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/order", sid, map[string]string{"pharmacy": "Downtown Care"})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestRequestRefill(t *testing.T) {
	_, r, _ := setup(t)

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/3/refill", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var p model.Prescription
	resp.Decode(t, &p)
	assert.Equal(t, model.PrescriptionStatusPendingApproval, p.Status)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/prescriptions/1/refill", "", nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
}
