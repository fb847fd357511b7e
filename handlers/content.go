package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arslanops/api/store"
)

// ContentHandler serves the CMS section mapping. Reads are public so the
// frontend can render; writes require the admin guard at the route level.
type ContentHandler struct {
	store store.ContentStore
}

func NewContentHandler(s store.ContentStore) *ContentHandler {
	return &ContentHandler{store: s}
}

func (h *ContentHandler) GetAllContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "İçerik okunamadı: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *ContentHandler) GetContentSection(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]
	value, err := h.store.Section(section)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Bölüm bulunamadı: "+section)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "İçerik okunamadı: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, value)
}

// UpdateContentSection upserts one section with whatever JSON the admin panel
// sends; the value is stored verbatim.
func (h *ContentHandler) UpdateContentSection(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON")
		return
	}
	if err := h.store.PutSection(section, body); err != nil {
		writeError(w, http.StatusInternalServerError, "İçerik kaydedilemedi: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": section + " güncellendi",
		"data":    json.RawMessage(body),
	})
}

func (h *ContentHandler) UpdateAllContent(w http.ResponseWriter, r *http.Request) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz JSON")
		return
	}
	if err := h.store.ReplaceAll(doc); err != nil {
		writeError(w, http.StatusInternalServerError, "İçerik kaydedilemedi: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Tüm içerik güncellendi",
	})
}
