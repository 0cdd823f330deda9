package http

import (
	"net/http"

	"doctor-listing/internal/delivery/http/handler"
	"doctor-listing/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router                  *mux.Router
	doctorHandler           *handler.DoctorHandler
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		doctorHandler:           doctorHandler,
		requestLoggerMiddleware: requestLoggerMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Metrics
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Doctor listing
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.Suggest).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/doctors/filters/events", r.doctorHandler.ApplyFilterEvent).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet, http.MethodOptions)

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
