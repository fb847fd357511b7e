package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arslanops/api/models"
)

func newLeadTestHandler(t *testing.T) (*LeadHandler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "leads.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewLeadHandler(db), db
}

func leadCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Lead{}).Count(&n).Error; err != nil {
		t.Fatalf("count leads: %v", err)
	}
	return n
}

func postLead(t *testing.T, h *LeadHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CreateLead(rec, req)
	return rec
}

const validLeadBody = `{
	"ad_soyad": "Ali Arslan",
	"isletme_turu": "kafe",
	"sehir": "İzmir",
	"telefon": "0555 123-45-67",
	"mesaj": "Görüşmek istiyorum"
}`

func TestCreateLead(t *testing.T) {
	h, db := newLeadTestHandler(t)

	rec := postLead(t, h, validLeadBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp["success"] != true || resp["id"] == float64(0) {
		t.Errorf("response = %v", resp)
	}

	var lead models.Lead
	if err := db.First(&lead).Error; err != nil {
		t.Fatalf("stored lead missing: %v", err)
	}
	if lead.Phone != "05551234567" {
		t.Errorf("stored phone = %q, want normalized digits", lead.Phone)
	}
	if lead.CreatedAt == "" {
		t.Error("stored lead has no created_at stamp")
	}
}

func TestCreateLeadValidation(t *testing.T) {
	h, db := newLeadTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{`},
		{"missing message", `{"ad_soyad":"A","isletme_turu":"b","sehir":"c","telefon":"0555 123 45 67","mesaj":""}`},
		{"short phone", `{"ad_soyad":"A","isletme_turu":"b","sehir":"c","telefon":"12345","mesaj":"m"}`},
		{"bad email", `{"ad_soyad":"A","isletme_turu":"b","sehir":"c","telefon":"0555 123 45 67","mesaj":"m","email":"yok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLead(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
	if n := leadCount(t, db); n != 0 {
		t.Errorf("lead count = %d after rejected submissions, want 0", n)
	}
}

func TestCreateLeadHoneypot(t *testing.T) {
	h, db := newLeadTestHandler(t)

	body := strings.Replace(validLeadBody, `"mesaj"`, `"website": "http://spam.example", "mesaj"`, 1)
	rec := postLead(t, h, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want success envelope for honeypot", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp["id"] != float64(0) {
		t.Errorf("honeypot id = %v, want 0", resp["id"])
	}
	if n := leadCount(t, db); n != 0 {
		t.Errorf("lead count = %d, honeypot submission must not persist", n)
	}
}

func TestGetAllLeadsOrder(t *testing.T) {
	h, db := newLeadTestHandler(t)
	db.Create(&models.Lead{FullName: "Eski", BusinessType: "b", City: "c", Phone: "0000000000", Message: "m", CreatedAt: "2025-01-01T00:00:00.000000"})
	db.Create(&models.Lead{FullName: "Yeni", BusinessType: "b", City: "c", Phone: "0000000000", Message: "m", CreatedAt: "2025-06-01T00:00:00.000000"})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	rec := httptest.NewRecorder()
	h.GetAllLeads(rec, req)

	var leads []models.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &leads); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(leads) != 2 || leads[0].FullName != "Yeni" {
		t.Errorf("leads not ordered newest first: %+v", leads)
	}
}

func TestDeleteLead(t *testing.T) {
	h, db := newLeadTestHandler(t)
	db.Create(&models.Lead{FullName: "A", BusinessType: "b", City: "c", Phone: "0000000000", Message: "m", CreatedAt: "2025-01-01T00:00:00.000000"})

	del := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("DELETE", "/api/leads/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		h.DeleteLead(rec, req)
		return rec
	}

	if rec := del("1"); rec.Code != http.StatusOK {
		t.Errorf("delete existing status = %d, want 200", rec.Code)
	}
	if rec := del("1"); rec.Code != http.StatusNotFound {
		t.Errorf("delete missing status = %d, want 404", rec.Code)
	}
	if rec := del("abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("delete non-numeric status = %d, want 400", rec.Code)
	}
	if n := leadCount(t, db); n != 0 {
		t.Errorf("lead count = %d after delete, want 0", n)
	}
}
