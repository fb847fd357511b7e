package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/arslanops/api/models"
)

// LeadHandler serves the contact-form intake and the admin lead views.
type LeadHandler struct {
	db *gorm.DB
}

func NewLeadHandler(db *gorm.DB) *LeadHandler {
	return &LeadHandler{db: db}
}

// CreateLead handles the public form submission. Bots that fill the hidden
// honeypot field get the normal success envelope with id 0 and nothing is
// written, so automated senders cannot tell they were dropped.
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var sub models.LeadSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}
	if err := sub.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if sub.Website != "" {
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Talebiniz başarıyla alındı",
			"id":      0,
		})
		return
	}

	lead := sub.Lead()
	lead.CreatedAt = models.NowISO()
	if err := h.db.Create(&lead).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Veritabanı hatası: "+err.Error())
		return
	}

	log.WithField("id", lead.ID).Info("lead received")
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Talebiniz başarıyla alındı",
		"id":      lead.ID,
	})
}

func (h *LeadHandler) GetAllLeads(w http.ResponseWriter, r *http.Request) {
	var leads []models.Lead
	if err := h.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Veritabanı hatası: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz lead id")
		return
	}

	result := h.db.Delete(&models.Lead{}, "id = ?", id)
	if result.Error != nil {
		writeError(w, http.StatusInternalServerError, "Veritabanı hatası: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "Lead bulunamadı")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Lead silindi",
	})
}

// ExportLeads streams all leads as an xlsx download for offline follow-up.
func (h *LeadHandler) ExportLeads(w http.ResponseWriter, r *http.Request) {
	var leads []models.Lead
	if err := h.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "Veritabanı hatası: "+err.Error())
		return
	}

	f, err := leadsExcelFile(leads)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Excel dosyası oluşturulamadı: "+err.Error())
		return
	}

	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(w); err != nil {
		log.WithError(err).Error("lead export write failed")
	}
}

func leadsExcelFile(leads []models.Lead) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Leads"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	headers := []string{
		"ID", "Ad Soyad", "İşletme Türü", "Şehir", "Telefon",
		"E-posta", "Mesaj", "Paket", "UTM Source", "UTM Campaign", "Tarih",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	f.SetColWidth(sheet, "B", "K", 22)

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	for row, lead := range leads {
		values := []interface{}{
			lead.ID, lead.FullName, lead.BusinessType, lead.City, lead.Phone,
			deref(lead.Email), lead.Message, deref(lead.Package),
			deref(lead.UTMSource), deref(lead.UTMCampaign), lead.CreatedAt,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}
	return f, nil
}
