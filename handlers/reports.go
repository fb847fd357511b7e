package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arslanops/api/store"
)

// ReportHandler serves the business-visit assessment reports. All routes are
// admin-only.
type ReportHandler struct {
	store store.ReportStore
}

func NewReportHandler(s store.ReportStore) *ReportHandler {
	return &ReportHandler{store: s}
}

func (h *ReportHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.Summaries()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Raporlar okunamadı: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	report, err := h.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Rapor bulunamadı")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Raporlar okunamadı: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON")
		return
	}
	id, err := h.store.Create(fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rapor kaydedilemedi: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      id,
		"message": "Rapor kaydedildi",
	})
}

func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON")
		return
	}
	err := h.store.Update(id, fields)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Rapor bulunamadı")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rapor kaydedilemedi: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Rapor güncellendi",
	})
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Rapor bulunamadı")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rapor silinemedi: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Rapor silindi",
	})
}

// GetReportsByBusiness returns every visit for one business, oldest first,
// for the before/after comparison view.
func (h *ReportHandler) GetReportsByBusiness(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	reports, err := h.store.ByBusiness(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Raporlar okunamadı: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
