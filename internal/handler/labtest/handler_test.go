package labtest

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

func TestLabTests(t *testing.T) {
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	h := NewHandler(svcs.Labs, svcs.Portal)
	h.RegisterRoutes(api)
	h.RegisterSearchRoutes(api)
	sid := svcs.NewSession(t)

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/lab-tests", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tests []model.LabTest
	resp.Decode(t, &tests)
	assert.Len(t, tests, 6)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/lab-tests/nearby", sid, map[string]string{"test_name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/lab-tests/nearby", sid, map[string]string{"test_name": "Lipid Panel"})
	assert.Equal(t, http.StatusPreconditionFailed, resp.Code)

	_, err := svcs.Portal.SetLocation(context.Background(), sid, model.Location{Latitude: 51.5, Longitude: -0.12})
	require.NoError(t, err)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/lab-tests/nearby", sid, map[string]string{"test_name": "Lipid Panel"})
	require.Equal(t, http.StatusOK, resp.Code)

	calls := svcs.Assistant.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ai.OpLabs, calls[0].Op)
	assert.Equal(t, "Lipid Panel", calls[0].Query)
	assert.InDelta(t, 51.5, calls[0].Location.Latitude, 1e-9)
}
