package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/arslanops/api/utils"
)

const maxUploadSize = 15 << 20 // 15MB

var allowedUploadTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/svg+xml": true,
	"image/gif":     true,
	"video/mp4":     true,
	"video/webm":    true,
}

// UploadHandler stores media files under category subdirectories of the
// uploads root. There is no database index; the filesystem is the record.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// UploadFile accepts a multipart "file" plus an optional "category" (logo,
// hero, general). The stored name is a random 12-hex token keeping the
// original extension, so uploads never collide or leak source names.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz form verisi: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dosya alanı eksik")
		return
	}
	defer file.Close()

	category := r.FormValue("category")
	if category == "" {
		category = "general"
	}
	if category != filepath.Base(category) || strings.ContainsAny(category, "/\\") || category == ".." {
		writeError(w, http.StatusBadRequest, "Geçersiz kategori")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		writeError(w, http.StatusBadRequest, "Desteklenmeyen dosya türü: "+contentType)
		return
	}

	// Read fully before touching disk so an over-limit upload writes nothing.
	contents, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Dosya okunamadı: "+err.Error())
		return
	}
	if len(contents) > maxUploadSize {
		writeError(w, http.StatusBadRequest, "Dosya boyutu 15MB'dan büyük olamaz")
		return
	}

	categoryDir := filepath.Join(h.dir, category)
	if err := os.MkdirAll(categoryDir, 0755); err != nil {
		writeError(w, http.StatusInternalServerError, "Dizin oluşturulamadı: "+err.Error())
		return
	}

	filename := utils.RandomToken(12) + filepath.Ext(header.Filename)
	if err := os.WriteFile(filepath.Join(categoryDir, filename), contents, 0644); err != nil {
		writeError(w, http.StatusInternalServerError, "Dosya kaydedilemedi: "+err.Error())
		return
	}

	log.WithFields(log.Fields{
		"category": category,
		"filename": filename,
		"size":     len(contents),
	}).Info("file uploaded")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"url":      "/uploads/" + category + "/" + filename,
		"filename": filename,
		"category": category,
	})
}

// DeleteUpload removes a stored file by its public URL path. Anything not
// rooted under /uploads/ (including traversal attempts) is malformed input.
func (h *UploadHandler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if !strings.HasPrefix(url, "/uploads/") {
		writeError(w, http.StatusBadRequest, "Geçersiz dosya yolu")
		return
	}

	rel := strings.TrimPrefix(url, "/uploads/")
	path := filepath.Join(h.dir, filepath.FromSlash(rel))

	base, err := filepath.Abs(h.dir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Dosya silinemedi: "+err.Error())
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil || !strings.HasPrefix(abs, base+string(os.PathSeparator)) {
		writeError(w, http.StatusBadRequest, "Geçersiz dosya yolu")
		return
	}

	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "Dosya bulunamadı")
		return
	}
	if err := os.Remove(path); err != nil {
		writeError(w, http.StatusInternalServerError, "Dosya silinemedi: "+err.Error())
		return
	}

	log.WithField("url", url).Info("file deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Dosya silindi",
	})
}
