package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"netdiag/internal/database"
	"netdiag/internal/models"
)

// fakeDB records the hours it was asked for and returns canned data
type fakeDB struct {
	hours    int
	records  []models.Record
	stats    []models.Stats
	counts   []models.CauseCount
	sessions map[string]models.Session
	err      error
}

func (f *fakeDB) InsertSession(id, command string) error { return nil }
func (f *fakeDB) UpdateSessionStatus(id, status string) error { return nil }
func (f *fakeDB) SaveRecord(record models.Record) error { return nil }
func (f *fakeDB) PruneOldRecords(days int) error { return nil }
func (f *fakeDB) Close() error { return nil }

func (f *fakeDB) GetStats(hours int) ([]models.Stats, error) {
	f.hours = hours
	return f.stats, f.err
}

func (f *fakeDB) GetRecent(hours int) ([]models.Record, error) {
	f.hours = hours
	return f.records, f.err
}

func (f *fakeDB) GetCauseCounts(hours int) ([]models.CauseCount, error) {
	f.hours = hours
	return f.counts, f.err
}

func (f *fakeDB) GetByRun(runID string) ([]models.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Record{}
	for _, r := range f.records {
		if r.RunID == runID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDB) GetSession(id string) (models.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return models.Session{}, database.ErrSessionNotFound
	}
	return s, nil
}

var _ models.Database = (*fakeDB)(nil)

func sampleDB() *fakeDB {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeDB{
		records: []models.Record{
			{RunID: "r1", Timestamp: ts, Target: "8.8.8.8", Diagnosis: models.Diagnosis{Cause: models.CauseOK, Confidence: 1}},
			{RunID: "r2", Timestamp: ts, Target: "1.1.1.1", Diagnosis: models.Diagnosis{Cause: models.CauseHighLoss, Confidence: 0.75}},
		},
		stats:    []models.Stats{{Target: "8.8.8.8", Records: 1}},
		counts:   []models.CauseCount{{Target: "8.8.8.8", Cause: models.CauseOK, Count: 1}},
		sessions: map[string]models.Session{"r1": {ID: "r1", Command: "ping", Status: models.SessionCompleted, StartedAt: ts}},
	}
}

func TestHoursParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 24},
		{"?hours=6", 6},
		{"?hours=abc", 24},
		{"?hours=-3", 24},
		{"?hours=0", 24},
	}

	for _, tt := range tests {
		db := sampleDB()
		srv := New(db, 8080)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/records"+tt.query, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", tt.query, rec.Code)
		}
		if db.hours != tt.want {
			t.Errorf("GET %s hours = %d, want %d", tt.query, db.hours, tt.want)
		}
	}
}

func TestListEndpoints(t *testing.T) {
	tests := []struct {
		path    string
		wantLen int
		field   string
		want    string
	}{
		{"/api/records", 2, "target", "8.8.8.8"},
		{"/api/stats?hours=1", 1, "target", "8.8.8.8"},
		{"/api/causes", 1, "cause", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			srv := New(sampleDB(), 8080)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var body []map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if len(body) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(body), tt.wantLen)
			}
			if body[0][tt.field] != tt.want {
				t.Errorf("%s = %v, want %s", tt.field, body[0][tt.field], tt.want)
			}
		})
	}
}

func TestDatabaseErrors(t *testing.T) {
	for _, path := range []string{"/api/records", "/api/stats", "/api/causes", "/api/runs/r1"} {
		db := sampleDB()
		db.err = errors.New("disk on fire")
		rec := httptest.NewRecorder()
		New(db, 8080).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s status = %d, want 500", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "disk on fire") {
			t.Errorf("GET %s body = %q, want the error text", path, rec.Body)
		}
	}
}

func TestRunEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantRecords int
		wantSession bool
	}{
		{"with session", "/api/runs/r1", http.StatusOK, 1, true},
		{"records without session", "/api/runs/r2", http.StatusOK, 1, false},
		{"unknown run", "/api/runs/nope", http.StatusNotFound, 0, false},
		{"missing id", "/api/runs/", http.StatusBadRequest, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			New(sampleDB(), 8080).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body runResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if len(body.Records) != tt.wantRecords {
				t.Errorf("records = %d, want %d", len(body.Records), tt.wantRecords)
			}
			if (body.Session != nil) != tt.wantSession {
				t.Errorf("session = %+v, want present=%v", body.Session, tt.wantSession)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	New(sampleDB(), 8080).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/records", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}
