package record

import (
	"bytes"
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
	NewHandler(svcs.Records).RegisterRoutes(api)
	return r
}

func TestAddRecordKeepsDateOrder(t *testing.T) {
	r := setup()

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/records", "", map[string]string{
		"title":     "Blood Work",
		"date":      "2023-09-01",
		"type":      "lab_result",
		"file_name": "blood.pdf",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.MedicalRecord
	resp.Decode(t, &created)
	assert.NotEmpty(t, created.ID)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/records", "", nil)
	var records []model.MedicalRecord
	resp.Decode(t, &records)
	require.Len(t, records, 5)
	assert.Equal(t, "2023-10-15", records[0].Date)
	assert.Equal(t, "2023-09-22", records[1].Date)
	assert.Equal(t, created.ID, records[2].ID)
}

func TestAddRecordValidation(t *testing.T) {
	r := setup()

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/records", "", map[string]string{
		"title": "",
		"date":  "2023-09-01",
		"type":  "lab_result",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = handlertest.Do(t, r, http.MethodPost, "/api/v1/records", "", map[string]string{
		"title": "X-ray",
		"date":  "2023-09-01",
		"type":  "imaging",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	r := setup()

	resp := handlertest.Do(t, r, http.MethodDelete, "/api/v1/records/2", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/records", "", nil)
	var records []model.MedicalRecord
	resp.Decode(t, &records)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.NotEqual(t, "2", rec.ID)
	}

	resp = handlertest.Do(t, r, http.MethodDelete, "/api/v1/records/2", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDownloadRecordPDF(t *testing.T) {
	r := setup()

	resp := handlertest.Do(t, r, http.MethodGet, "/api/v1/records/1/pdf", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
	assert.True(t, bytes.HasPrefix(resp.Body, []byte("%PDF")))

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/records/404/pdf", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
