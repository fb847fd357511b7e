package models

import (
	"encoding/json"
	"math"
)

// Visit reports are schemaless JSON objects owned by the admin UI; only the
// fields below have server-side meaning. Unknown fields pass through untouched.

// ScoreFields are the six assessment sub-scores averaged into toplam_skor.
var ScoreFields = []string{
	"skor_maliyet",
	"skor_stok",
	"skor_operasyon",
	"skor_personel",
	"skor_hijyen",
	"skor_musteri",
}

// DefaultScore substitutes for any sub-score the caller left out.
const DefaultScore = 5

// OverallScore derives toplam_skor: the mean of the six sub-scores scaled to
// a 0-100 range and rounded. Callers never get to supply it directly.
func OverallScore(report map[string]interface{}) int {
	total := 0.0
	for _, field := range ScoreFields {
		total += scoreValue(report, field)
	}
	return int(math.Round(total / float64(len(ScoreFields)) * 10))
}

func scoreValue(report map[string]interface{}, key string) float64 {
	v, ok := report[key]
	if !ok || v == nil {
		return DefaultScore
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return DefaultScore
		}
		return f
	default:
		return DefaultScore
	}
}

// ReportSummary is the listing projection: everything heavy (photos above all)
// is dropped so the admin list stays light.
type ReportSummary struct {
	ID           string `json:"id"`
	BusinessName string `json:"isletme_adi"`
	BusinessType string `json:"isletme_turu"`
	VisitDate    string `json:"ziyaret_tarihi"`
	OverallScore int    `json:"toplam_skor"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Summarize projects a stored report onto its summary fields.
func Summarize(report map[string]interface{}) ReportSummary {
	return ReportSummary{
		ID:           StringField(report, "id"),
		BusinessName: StringField(report, "isletme_adi"),
		BusinessType: StringField(report, "isletme_turu"),
		VisitDate:    StringField(report, "ziyaret_tarihi"),
		OverallScore: intField(report, "toplam_skor"),
		CreatedAt:    StringField(report, "created_at"),
		UpdatedAt:    StringField(report, "updated_at"),
	}
}

// StringField reads a string-typed field, returning "" when absent or not a
// string.
func StringField(report map[string]interface{}, key string) string {
	if s, ok := report[key].(string); ok {
		return s
	}
	return ""
}

func intField(report map[string]interface{}, key string) int {
	switch n := report[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
