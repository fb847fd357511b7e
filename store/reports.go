package store

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/arslanops/api/models"
	"github.com/arslanops/api/utils"
)

// ReportStore manages the visit-report list document. Records are schemaless
// maps; the store owns id, toplam_skor, photos and the two timestamps.
type ReportStore interface {
	Get(id string) (map[string]interface{}, error)
	Create(fields map[string]interface{}) (string, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
	Summaries() ([]models.ReportSummary, error)
	ByBusiness(name string) ([]map[string]interface{}, error)
}

type fileReportStore struct {
	mu   sync.Mutex
	path string
}

// NewReportStore opens the report list document at path. A missing file reads
// as an empty list and is created on first write.
func NewReportStore(path string) ReportStore {
	return &fileReportStore{path: path}
}

func (s *fileReportStore) load() ([]map[string]interface{}, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, err
	}
	var reports []map[string]interface{}
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *fileReportStore) save(reports []map[string]interface{}) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *fileReportStore) Get(id string) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		if models.StringField(r, "id") == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fileReportStore) Create(fields map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return "", err
	}

	id := utils.RandomToken(12)
	now := models.NowISO()

	fields["id"] = id
	fields["toplam_skor"] = models.OverallScore(fields)
	fields["created_at"] = now
	fields["updated_at"] = now
	if _, ok := fields["photos"]; !ok {
		fields["photos"] = []interface{}{}
	}

	reports = append(reports, fields)
	if err := s.save(reports); err != nil {
		return "", err
	}
	return id, nil
}

func (s *fileReportStore) Update(id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return err
	}
	for i, r := range reports {
		if models.StringField(r, "id") != id {
			continue
		}
		fields["id"] = id
		fields["toplam_skor"] = models.OverallScore(fields)
		created := models.StringField(r, "created_at")
		if created == "" {
			created = models.NowISO()
		}
		fields["created_at"] = created
		fields["updated_at"] = models.NowISO()
		reports[i] = fields
		return s.save(reports)
	}
	return ErrNotFound
}

func (s *fileReportStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]map[string]interface{}, 0, len(reports))
	for _, r := range reports {
		if models.StringField(r, "id") != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reports) {
		return ErrNotFound
	}
	return s.save(kept)
}

func (s *fileReportStore) Summaries() ([]models.ReportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.ReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, models.Summarize(r))
	}
	return summaries, nil
}

// ByBusiness returns all reports whose business name matches after trimming
// and case folding, oldest visit first so before/after views line up.
func (s *fileReportStore) ByBusiness(name string) ([]map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := s.load()
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	matched := make([]map[string]interface{}, 0)
	for _, r := range reports {
		got := strings.ToLower(strings.TrimSpace(models.StringField(r, "isletme_adi")))
		if got == want {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return models.StringField(matched[i], "ziyaret_tarihi") <
			models.StringField(matched[j], "ziyaret_tarihi")
	})
	return matched, nil
}
