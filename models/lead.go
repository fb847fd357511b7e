package models

import (
	"fmt"
	"strings"
)

// Lead is a contact-form submission. The wire and column names stay in the
// site's operating language because the admin panel consumes them as-is.
type Lead struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FullName     string  `gorm:"column:ad_soyad;not null" json:"ad_soyad"`
	BusinessType string  `gorm:"column:isletme_turu;not null" json:"isletme_turu"`
	City         string  `gorm:"column:sehir;not null" json:"sehir"`
	Phone        string  `gorm:"column:telefon;not null" json:"telefon"`
	Email        *string `gorm:"column:email" json:"email"`
	Message      string  `gorm:"column:mesaj;not null" json:"mesaj"`
	Package      *string `gorm:"column:paket" json:"paket"`
	UTMSource    *string `gorm:"column:utm_source" json:"utm_source"`
	UTMCampaign  *string `gorm:"column:utm_campaign" json:"utm_campaign"`
	CreatedAt    string  `gorm:"column:created_at;not null" json:"created_at"`
}

// LeadSubmission is the public form payload. Website is a honeypot: hidden in
// the form, so any non-empty value marks the sender as a bot.
type LeadSubmission struct {
	FullName     string  `json:"ad_soyad"`
	BusinessType string  `json:"isletme_turu"`
	City         string  `json:"sehir"`
	Phone        string  `json:"telefon"`
	Email        *string `json:"email"`
	Message      string  `json:"mesaj"`
	Package      *string `json:"paket"`
	UTMSource    *string `json:"utm_source"`
	UTMCampaign  *string `json:"utm_campaign"`
	Website      string  `json:"website"`
}

// Validate checks required fields and normalizes the submission in place:
// required text is trimmed, the phone number is stripped of spaces and dashes,
// a blank email becomes nil.
func (s *LeadSubmission) Validate() error {
	required := []struct {
		name  string
		value *string
	}{
		{"ad_soyad", &s.FullName},
		{"isletme_turu", &s.BusinessType},
		{"sehir", &s.City},
		{"telefon", &s.Phone},
		{"mesaj", &s.Message},
	}
	for _, f := range required {
		trimmed := strings.TrimSpace(*f.value)
		if trimmed == "" {
			return fmt.Errorf("%s: Bu alan boş bırakılamaz", f.name)
		}
		*f.value = trimmed
	}

	phone := strings.NewReplacer(" ", "", "-", "").Replace(s.Phone)
	if len(phone) < 10 {
		return fmt.Errorf("Telefon numarası en az 10 karakter olmalıdır")
	}
	s.Phone = phone

	if s.Email != nil {
		email := strings.TrimSpace(*s.Email)
		if email == "" {
			s.Email = nil
		} else if !strings.Contains(email, "@") {
			return fmt.Errorf("Geçerli bir e-posta adresi giriniz")
		} else {
			s.Email = &email
		}
	}
	return nil
}

// Lead builds the row to persist. CreatedAt is left for the caller to stamp.
func (s *LeadSubmission) Lead() Lead {
	return Lead{
		FullName:     s.FullName,
		BusinessType: s.BusinessType,
		City:         s.City,
		Phone:        s.Phone,
		Email:        s.Email,
		Message:      s.Message,
		Package:      s.Package,
		UTMSource:    s.UTMSource,
		UTMCampaign:  s.UTMCampaign,
	}
}
