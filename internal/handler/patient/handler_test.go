package patient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmhcare/frontdesk-api/internal/config"
	"github.com/mmhcare/frontdesk-api/internal/document"
	"github.com/mmhcare/frontdesk-api/internal/middleware"
	"github.com/mmhcare/frontdesk-api/internal/repository/memory"
	"github.com/mmhcare/frontdesk-api/internal/service/patient"
	"github.com/mmhcare/frontdesk-api/pkg/idgen"
	"github.com/mmhcare/frontdesk-api/pkg/messaging"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := patient.NewService(memory.NewPatientRepository(), idgen.New(), "MMH").
		WithClock(func() time.Time { return time.Date(2025, time.December, 5, 10, 0, 0, 0, time.UTC) })

	renderer := document.NewRenderer(config.ClinicConfig{
		Name:    "Maternity & Nursing Home",
		Address: "12 Hospital Road, Chennai",
		Phone:   "044-12345678",
	})

	h := NewHandler(svc, renderer, messaging.NewWhatsAppLinker("91"))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"visit_type": "OP",
		"name":       "Smt. Anjali Ramesh",
		"sex":        "Female",
		"dob":        "1999-03-14",
		"phone":      "98765 43210",
		"doctor":     "Dr. Lakshmi Narayanan",
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterPatient(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/v1/patients", registerBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Patient struct {
				ApplicationNumber string `json:"application_number"`
				Age               int    `json:"age"`
			} `json:"patient"`
			Message     string `json:"message"`
			PrintForm   string `json:"print_form"`
			WhatsAppURL string `json:"whatsapp_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "MMH-OP-2025-000001", resp.Data.Patient.ApplicationNumber)
	assert.Equal(t, 26, resp.Data.Patient.Age)
	assert.Contains(t, resp.Data.Message, "Registration Successful!")
	assert.Contains(t, resp.Data.PrintForm, "PATIENT REGISTRATION FORM")
	assert.Contains(t, resp.Data.WhatsAppURL, "https://wa.me/919876543210?text=")
}

func TestRegisterPatientMissingFieldsIs400(t *testing.T) {
	r := newTestRouter()

	body := registerBody()
	delete(body, "name")

	w := doRequest(t, r, http.MethodPost, "/api/v1/patients", body)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "name", resp.Field)
}

func TestRegisterPatientUnknownVisitTypeIs400(t *testing.T) {
	r := newTestRouter()

	body := registerBody()
	body["visit_type"] = "XX"

	w := doRequest(t, r, http.MethodPost, "/api/v1/patients", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestGetUnknownPatientIs404(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/v1/patients/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestGetPatientMalformedIDIs400(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/v1/patients/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestSearchPatients(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/v1/patients", registerBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	second := registerBody()
	second["name"] = "Shri. Karthik Subramanian"
	second["sex"] = "Male"
	second["phone"] = "9000011111"
	w = doRequest(t, r, http.MethodPost, "/api/v1/patients", second)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/api/v1/patients/search?name=anjali", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Smt. Anjali Ramesh", resp.Data[0].Name)
}
