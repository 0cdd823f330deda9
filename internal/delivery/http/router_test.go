package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctor-listing/internal/delivery/http/handler"
	"doctor-listing/internal/delivery/http/middleware"
	"doctor-listing/internal/domain/entity"
	domainRepo "doctor-listing/internal/domain/repository"
	"doctor-listing/internal/repository"
	"doctor-listing/internal/usecase"
	"doctor-listing/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type downDoctorRepository struct{}

func (downDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return nil, errors.New("connection refused")
}

func newTestRouter(t *testing.T, repo domainRepo.DoctorRepository) *mux.Router {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	listingUsecase := usecase.NewDoctorListingUsecase(log, repo, "sample")
	doctorHandler := handler.NewDoctorHandler(listingUsecase, validator.NewValidator())
	return NewRouter(
		doctorHandler,
		middleware.NewRequestLoggerMiddleware(log),
		middleware.NewCORSMiddleware(),
	).Setup()
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	rec, _ := serve(t, router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ListDoctors(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors?specialties=Dentist,Oncologist&sort=experience", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data struct {
		Doctors []struct {
			ID int `json:"id"`
		} `json:"doctors"`
		Total int    `json:"total"`
		Query string `json:"query"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Doctors, 3)
	assert.Equal(t, []int{5, 8, 7}, []int{data.Doctors[0].ID, data.Doctors[1].ID, data.Doctors[2].ID})
	assert.Equal(t, 3, data.Total)
	assert.Equal(t, "specialties=Dentist%2COncologist&sort=experience", data.Query)
}

func TestRouter_GetDoctor(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors/5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doctor struct {
		DisplayName string `json:"display_name"`
		Clinic      string `json:"clinic"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &doctor))
	assert.Equal(t, "Dr. Khushi Patel", doctor.DisplayName)
	assert.Equal(t, "Dr Khushi's Dental Planet", doctor.Clinic)

	rec, env = serve(t, router, http.MethodGet, "/api/v1/doctors/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = serve(t, router, http.MethodGet, "/api/v1/doctors/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Suggestions(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors/suggestions?q=dent", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Suggestions []struct {
			ID int `json:"id"`
		} `json:"suggestions"`
		Visible bool `json:"visible"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Visible)
	assert.Len(t, data.Suggestions, 2)
}

func TestRouter_Specialties(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	rec, env := serve(t, router, http.MethodGet, "/api/v1/specialties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"specialties":["Dentist","General Physician","Neurologist","Oncologist"],"total":4}`, string(env.Data))
}

func TestRouter_ApplyFilterEvent(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	rec, env := serve(t, router, http.MethodPost, "/api/v1/doctors/filters/events",
		`{"query":"sort=fees","type":"toggle_mode","value":"Video Consult"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Navigation struct {
			Query   string `json:"query"`
			Replace bool   `json:"replace"`
		} `json:"navigation"`
		Listing struct {
			Total int `json:"total"`
		} `json:"listing"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "mode=Video+Consult&sort=fees", data.Navigation.Query)
	assert.True(t, data.Navigation.Replace)
	assert.Equal(t, 4, data.Listing.Total)
}

func TestRouter_ApplyFilterEventRejectsBadInput(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `{"type":`},
		{name: "missing type", body: `{"value":"x"}`},
		{name: "unknown type", body: `{"type":"teleport"}`},
		{name: "unknown suggestion", body: `{"type":"select_suggestion","value":"42"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := serve(t, router, http.MethodPost, "/api/v1/doctors/filters/events", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestRouter_StoreUnavailable(t *testing.T) {
	router := newTestRouter(t, downDoctorRepository{})

	for _, target := range []string{"/api/v1/doctors", "/api/v1/doctors/1", "/api/v1/doctors/suggestions?q=a", "/api/v1/specialties"} {
		rec, env := serve(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.False(t, env.Success, target)
	}
}

func TestRouter_PreflightAndRequestID(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/doctors/filters/events", nil)
	req.Header.Set(middleware.RequestIDHeader, "4f5b2c1e-8a7d-4b8e-9c1a-2d3e4f5a6b7c")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "4f5b2c1e-8a7d-4b8e-9c1a-2d3e4f5a6b7c", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())
	serve(t, router, http.MethodGet, "/api/v1/doctors?sort=fees", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "doctor_listing_requests_total")
}

func TestRouter_PreflightOnReadRoutes(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())

	for _, target := range []string{
		"/api/v1/doctors?sort=fees",
		"/api/v1/doctors/suggestions?q=dent",
		"/api/v1/doctors/5",
		"/api/v1/specialties",
		"/api/v1/health",
	} {
		req := httptest.NewRequest(http.MethodOptions, target, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "x-request-id")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), middleware.RequestIDHeader, target)
	}
}

func TestRouter_ApplyFilterEventLongSearchTerm(t *testing.T) {
	router := newTestRouter(t, repository.NewSampleDoctorRepository())
	term := strings.Repeat("a", 300)

	rec, env := serve(t, router, http.MethodPost, "/api/v1/doctors/filters/events",
		`{"type":"search","value":"`+term+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Listing struct {
			Total   int `json:"total"`
			Filters struct {
				SearchTerm string `json:"search"`
			} `json:"filters"`
		} `json:"listing"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, term, data.Listing.Filters.SearchTerm)
	assert.Zero(t, data.Listing.Total)
}
