package handlers

import (
	"net/http"

	"github.com/arslanops/api/models"
)

// HealthCheck is the liveness probe, also the keep-alive ping target.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": models.NowISO(),
	})
}

// APIHealthCheck mirrors HealthCheck under the /api prefix for frontend probes.
func APIHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
