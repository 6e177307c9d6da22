package http

import (
	"net/http"

	"hospital-dashboard/internal/delivery/http/handler"
	"hospital-dashboard/internal/delivery/http/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router                *mux.Router
	log                   *logrus.Logger
	healthHandler         *handler.HealthHandler
	patientHandler        *handler.PatientHandler
	noteHandler           *handler.ConsultationNoteHandler
	prescriptionHandler   *handler.PrescriptionHandler
	chatHandler           *handler.ChatHandler
	assistantStatsHandler *handler.AssistantStatsHandler
	voiceHandler          *handler.VoiceHandler
	auditLogHandler       *handler.AuditLogHandler
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	healthHandler *handler.HealthHandler,
	patientHandler *handler.PatientHandler,
	noteHandler *handler.ConsultationNoteHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	chatHandler *handler.ChatHandler,
	assistantStatsHandler *handler.AssistantStatsHandler,
	voiceHandler *handler.VoiceHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		log:                   log,
		healthHandler:         healthHandler,
		patientHandler:        patientHandler,
		noteHandler:           noteHandler,
		prescriptionHandler:   prescriptionHandler,
		chatHandler:           chatHandler,
		assistantStatsHandler: assistantStatsHandler,
		voiceHandler:          voiceHandler,
		auditLogHandler:       auditLogHandler,
		corsMiddleware:        corsMiddleware,
	}
}

// Setup registers every route and returns the fully wrapped handler.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Patient records
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/history", r.patientHandler.UpdateHistory).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}/summary", r.patientHandler.GetSummary).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/photo", r.patientHandler.UploadPhoto).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/photo", r.patientHandler.GetPhoto).Methods(http.MethodGet)

	// Consultation notes
	api.HandleFunc("/patients/{id}/notes", r.noteHandler.CreateNote).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/notes/{noteId}", r.noteHandler.DeleteNote).Methods(http.MethodDelete)

	// Prescriptions
	api.HandleFunc("/patients/{id}/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/prescriptions/{prescriptionId}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPatch)
	api.HandleFunc("/patients/{id}/prescriptions/{prescriptionId}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/prescriptions/{prescriptionId}/pdf", r.prescriptionHandler.DownloadPDF).Methods(http.MethodGet)

	// Assistant
	api.HandleFunc("/chat", r.chatHandler.Chat).Methods(http.MethodPost)
	api.HandleFunc("/assistant/stats", r.assistantStatsHandler.GetStats).Methods(http.MethodGet)

	// Voice proxy
	api.HandleFunc("/voice/speech", r.voiceHandler.Speech).Methods(http.MethodPost)
	api.HandleFunc("/voice/transcriptions", r.voiceHandler.Transcribe).Methods(http.MethodPost)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.AccessLog(r.log))

	// CORS wraps the router so preflights bypass route matching
	var h http.Handler = r.router
	h = handlers.CompressHandler(h)
	h = r.corsMiddleware.Handle(h)
	return middleware.Recovery(r.log)(h)
}
