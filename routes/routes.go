package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/arslanops/api/config"
	"github.com/arslanops/api/handlers"
	"github.com/arslanops/api/middleware"
	"github.com/arslanops/api/store"
)

// Lead intake allows 5 submissions per client IP per 5 minutes.
const (
	rateLimitMax    = 5
	rateLimitWindow = 300 * time.Second
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(db *gorm.DB, contentStore store.ContentStore, reportStore store.ReportStore, uploadsDir string) http.Handler {
	r := mux.NewRouter()

	leads := handlers.NewLeadHandler(db)
	content := handlers.NewContentHandler(contentStore)
	reports := handlers.NewReportHandler(reportStore)
	uploads := handlers.NewUploadHandler(uploadsDir)

	admin := middleware.BasicAuth(config.AdminUser(), config.AdminPass())
	limiter := middleware.NewRateLimiter(rateLimitMax, rateLimitWindow)

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/health", handlers.APIHealthCheck).Methods("GET")
	r.Handle("/api/leads", limiter.Limit(http.HandlerFunc(leads.CreateLead))).Methods("POST")
	r.HandleFunc("/api/content", content.GetAllContent).Methods("GET")
	r.HandleFunc("/api/content/{section}", content.GetContentSection).Methods("GET")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))),
	)

	// =====================================================
	// Admin Routes (HTTP basic auth on every request)
	// =====================================================
	r.Handle("/api/leads", admin(http.HandlerFunc(leads.GetAllLeads))).Methods("GET")
	r.Handle("/api/leads/export", admin(http.HandlerFunc(leads.ExportLeads))).Methods("GET")
	r.Handle("/api/leads/{id}", admin(http.HandlerFunc(leads.DeleteLead))).Methods("DELETE")

	r.Handle("/api/content", admin(http.HandlerFunc(content.UpdateAllContent))).Methods("PUT")
	r.Handle("/api/content/{section}", admin(http.HandlerFunc(content.UpdateContentSection))).Methods("PUT")

	r.Handle("/api/reports", admin(http.HandlerFunc(reports.GetReports))).Methods("GET")
	r.Handle("/api/reports", admin(http.HandlerFunc(reports.CreateReport))).Methods("POST")
	r.Handle("/api/reports/business/{name}", admin(http.HandlerFunc(reports.GetReportsByBusiness))).Methods("GET")
	r.Handle("/api/reports/{id}", admin(http.HandlerFunc(reports.GetReport))).Methods("GET")
	r.Handle("/api/reports/{id}", admin(http.HandlerFunc(reports.UpdateReport))).Methods("PUT")
	r.Handle("/api/reports/{id}", admin(http.HandlerFunc(reports.DeleteReport))).Methods("DELETE")

	r.Handle("/api/upload", admin(http.HandlerFunc(uploads.UploadFile))).Methods("POST")
	r.Handle("/api/upload", admin(http.HandlerFunc(uploads.DeleteUpload))).Methods("DELETE")

	return r
}
