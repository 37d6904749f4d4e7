package doctor

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/handler/handlertest"
	"github.com/jwalitptl/medlink-api/internal/model"
)

func setup(t *testing.T) (*handlertest.Services, http.Handler, string) {
	t.Helper()
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	h := NewHandler(svcs.Doctors, svcs.Portal)
	h.RegisterRoutes(api)
	h.RegisterSearchRoutes(api)
	return svcs, r, svcs.NewSession(t)
}

func TestListDoctorsFiltersBySpecialty(t *testing.T) {
	_, r, _ := setup(t)

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/doctors", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var all []model.Doctor
	resp.Decode(t, &all)
	assert.Len(t, all, 6)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/doctors?specialty=%20CARDIO%20", "", nil)
	var filtered []model.Doctor
	resp.Decode(t, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Dr. Evelyn Reed", filtered[0].Name)
}

func TestGetDoctor(t *testing.T) {
	_, r, _ := setup(t)

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/doctors/doc3", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var d model.Doctor
	resp.Decode(t, &d)
	assert.Equal(t, "Pediatrician", d.Specialty)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/doctors/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestFindNearbyNeedsSpecialtyAndLocation(t *testing.T) {
	svcs, r, sid := setup(t)

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/doctors/nearby", sid, map[string]string{"specialty": " "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Please enter a medical specialty.", resp.Message)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/doctors/nearby", sid, map[string]string{"specialty": "Dermatologist"})
	assert.Equal(t, http.StatusPreconditionFailed, resp.Code)
	assert.Equal(t, "Please allow location access to find doctors near you.", resp.Message)

	_, err := svcs.Portal.SetLocation(context.Background(), sid, model.Location{Latitude: 37.77, Longitude: -122.42})
	require.NoError(t, err)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/doctors/nearby", sid, map[string]string{"specialty": "Dermatologist"})
	require.Equal(t, http.StatusOK, resp.Code)
	var result model.PlaceSearchResult
	resp.Decode(t, &result)
	assert.Len(t, result.Places(), 1)

	calls := svcs.Assistant.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ai.OpSpecialists, calls[0].Op)
	assert.Equal(t, "Dermatologist", calls[0].Query)
}
