package registration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/internal/handler/handlertest"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

func validRequest() map[string]interface{} {
	return map[string]interface{}{
		"full_name":           "Dr. Ada Okafor",
		"email":               "ada@example.com",
		"phone_number":        "+1 555 0100",
		"specialty":           "Endocrinologist",
		"license_number":      "TX-MD-100200",
		"years_of_experience": 8,
		"consultation_fee":    135,
		"consultation_types":  []string{"video", "chat"},
	}
}

func TestRegister(t *testing.T) {
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	NewHandler(svcs.Registrations).RegisterRoutes(api)

	resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/registrations", "", validRequest())
	require.Equal(t, http.StatusCreated, resp.Code)
	var reg model.DoctorRegistration
	resp.Decode(t, &reg)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, model.RegistrationSubmitted, reg.Status)

	resp = handlertest.Do(t, r, http.MethodGet, "/api/v1/registrations", "", nil)
	var list []model.DoctorRegistration
	resp.Decode(t, &list)
	assert.Len(t, list, 1)
}

func TestRegisterValidation(t *testing.T) {
	svcs := handlertest.NewServices()
	r, api := svcs.NewEngine()
	NewHandler(svcs.Registrations).RegisterRoutes(api)

	cases := map[string]func(map[string]interface{}){
		"bad email":       func(b map[string]interface{}) { b["email"] = "not-an-email" },
		"no types":        func(b map[string]interface{}) { b["consultation_types"] = []string{} },
		"unknown type":    func(b map[string]interface{}) { b["consultation_types"] = []string{"fax"} },
		"negative fee":    func(b map[string]interface{}) { b["consultation_fee"] = -1 },
		"missing name":    func(b map[string]interface{}) { delete(b, "full_name") },
		"blank specialty": func(b map[string]interface{}) { b["specialty"] = "  " },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			body := validRequest()
			mutate(body)
			resp := handlertest.Do(t, r, http.MethodPost, "/api/v1/registrations", "", body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, httputil.StatusError, resp.Status)
		})
	}
}
