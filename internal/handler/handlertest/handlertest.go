// Package handlertest wires the portal services over seeded in-memory
// stores and drives gin handlers through httptest.
package handlertest

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/ai/aitest"
	"github.com/jwalitptl/medlink-api/internal/email"
	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/repository/memory"
	"github.com/jwalitptl/medlink-api/internal/service/appointment"
	"github.com/jwalitptl/medlink-api/internal/service/doctor"
	"github.com/jwalitptl/medlink-api/internal/service/event"
	"github.com/jwalitptl/medlink-api/internal/service/labtest"
	"github.com/jwalitptl/medlink-api/internal/service/medical"
	"github.com/jwalitptl/medlink-api/internal/service/portal"
	"github.com/jwalitptl/medlink-api/internal/service/prescription"
	"github.com/jwalitptl/medlink-api/internal/service/registration"
	"github.com/jwalitptl/medlink-api/internal/service/wallet"
	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
	"github.com/jwalitptl/medlink-api/pkg/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterGin(); err != nil {
		panic(err)
	}
}

type Services struct {
	Portal        *portal.Service
	Doctors       *doctor.Service
	Appointments  *appointment.Service
	Prescriptions *prescription.Service
	Records       *medical.Service
	Labs          *labtest.Service
	Wallet        *wallet.Service
	Registrations *registration.Service
	Assistant     *aitest.Assistant
	Metrics       *metrics.Metrics
}

// NewServices builds every service over fresh seeded stores.
func NewServices() *Services {
	assistant := &aitest.Assistant{
		Places: model.PlaceSearchResult{
			Text: "Here are some options nearby.",
			GroundingChunks: []model.GroundingChunk{
				{Maps: &model.MapsPlace{URI: "https://maps.example/1", Title: "Downtown Care"}},
			},
		},
		Reply: "Rest and stay hydrated.",
		Notes: model.SOAPNotes{Subjective: "Cough", Objective: "Afebrile", Assessment: "Viral URI", Plan: "Fluids"},
	}
	m := metrics.NewNop()
	l := logger.NewNop()

	doctors := memory.NewDoctorRepository()
	catalog := memory.NewCatalogRepository()

	s := &Services{Assistant: assistant, Metrics: m}
	s.Doctors = doctor.NewService(doctors, assistant)
	s.Appointments = appointment.NewService(memory.NewAppointmentRepository(), doctors, event.Nop())
	s.Prescriptions = prescription.NewService(memory.NewPrescriptionRepository(), assistant, event.Nop(), m)
	s.Records = medical.NewService(memory.NewMedicalRecordRepository(), event.Nop())
	s.Labs = labtest.NewService(catalog, assistant)
	s.Wallet = wallet.NewService(memory.NewWalletRepository(), memory.NewInsuranceRepository(), catalog, event.Nop())
	s.Registrations = registration.NewService(memory.NewRegistrationRepository(), email.NewLogService(l), event.Nop(), l)
	s.Portal = portal.NewService(portal.Deps{
		Sessions:      memory.NewSessionRepository(time.Hour, time.Hour),
		Doctors:       s.Doctors,
		Appointments:  s.Appointments,
		Prescriptions: s.Prescriptions,
		Records:       s.Records,
		Labs:          s.Labs,
		Assistant:     assistant,
		Metrics:       m,
		Rand:          rand.New(rand.NewSource(1)),
	})
	return s
}

// NewSession starts a portal session and returns its id.
func (s *Services) NewSession(t *testing.T) string {
	t.Helper()
	sess, _, err := s.Portal.Ensure(context.Background(), "")
	require.NoError(t, err)
	return sess.ID
}

// NewEngine returns a test engine with error handling and the session
// middleware installed, and an /api/v1 group to register routes on.
func (s *Services) NewEngine() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.NewNop()), middleware.Session(s.Portal))
	return r, r.Group("/api/v1")
}

// Response is the decoded envelope with data left raw.
type Response struct {
	Code    int
	Header  http.Header
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Body    []byte          `json:"-"`
}

// Decode unmarshals the envelope's data into v.
func (r *Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v), string(r.Body))
}

// Do sends a request with an optional JSON body under the given session.
func Do(t *testing.T, h http.Handler, method, path, sessionID string, body interface{}) *Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.HeaderXSessionID, sessionID)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	resp := &Response{Code: w.Code, Header: w.Header(), Body: w.Body.Bytes()}
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(resp.Body, resp), string(resp.Body))
	}
	return resp
}
