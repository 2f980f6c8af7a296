package server

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/entity"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

type fakeStore struct {
	records []types.CandidateRecord
	listErr error
	cleared bool
	nextID  int64
}

func (s *fakeStore) InsertCandidate(_ context.Context, rec *types.CandidateRecord) (int64, error) {
	s.nextID++
	r := *rec
	r.ID = s.nextID
	s.records = append(s.records, r)
	return s.nextID, nil
}

func (s *fakeStore) ListCandidates(context.Context) ([]types.CandidateRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *fakeStore) ClearCandidates(context.Context) (int64, error) {
	n := int64(len(s.records))
	s.records = nil
	s.cleared = true
	return n, nil
}

func newTestServer(store *fakeStore) *Server {
	runner := pipeline.NewRunner(store, fields.DefaultTaxonomy(), entity.NewNoop(), nil)
	return New(Config{Port: 0}, store, runner, nil)
}

func doRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := doRequest(t, newTestServer(&fakeStore{}), httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestListCandidates(t *testing.T) {
	store := &fakeStore{records: []types.CandidateRecord{
		{ID: 1, Filename: "jane.pdf", Name: "Jane Doe", Email: "jane@example.com", Skills: "Python, SQL", PredictedScore: 80},
		{ID: 2, Filename: "anon.pdf", Skills: "Go", PredictedScore: 20},
	}}
	s := newTestServer(store)

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"no filter", "", []int64{1, 2}},
		{"min_score", "?min_score=50", []int64{1}},
		{"has_email yes", "?has_email=yes", []int64{1}},
		{"has_email no", "?has_email=no", []int64{2}},
		{"query on skills", "?q=python", []int64{1}},
		{"query on name", "?q=jane", []int64{1}},
		{"combined", "?q=go&min_score=50", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, s, httptest.NewRequest("GET", "/candidates"+tt.query, nil))
			require.Equal(t, http.StatusOK, rr.Code)

			var resp CandidatesResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, len(tt.wantIDs), resp.Count)

			var ids []int64
			for _, rec := range resp.Candidates {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListCandidates_InvalidFilters(t *testing.T) {
	s := newTestServer(&fakeStore{})

	for _, query := range []string{"?min_score=abc", "?min_score=101", "?has_email=maybe"} {
		rr := doRequest(t, s, httptest.NewRequest("GET", "/candidates"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, query)
	}
}

func TestListCandidates_StoreError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}
	rr := doRequest(t, newTestServer(store), httptest.NewRequest("GET", "/candidates", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestExportCSV(t *testing.T) {
	store := &fakeStore{records: []types.CandidateRecord{
		{ID: 7, Filename: "jane.pdf", Name: "Jane Doe", PredictedScore: 42.5},
	}}
	rr := doRequest(t, newTestServer(store), httptest.NewRequest("GET", "/candidates.csv", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "candidates.csv")
	assert.Contains(t, rr.Body.String(), "7,jane.pdf,Jane Doe")
	assert.Contains(t, rr.Body.String(), "42.50")
}

func TestExportCSV_Filtered(t *testing.T) {
	store := &fakeStore{records: []types.CandidateRecord{
		{ID: 1, Filename: "high.pdf", PredictedScore: 90},
		{ID: 2, Filename: "low.pdf", PredictedScore: 5},
	}}
	rr := doRequest(t, newTestServer(store), httptest.NewRequest("GET", "/candidates.csv?min_score=50", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "high.pdf")
	assert.NotContains(t, rr.Body.String(), "low.pdf")
}

func TestClearCandidates(t *testing.T) {
	store := &fakeStore{records: []types.CandidateRecord{{ID: 1}, {ID: 2}}}
	rr := doRequest(t, newTestServer(store), httptest.NewRequest("DELETE", "/candidates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":2}`, rr.Body.String())
	assert.True(t, store.cleared)
}

func TestAnalytics(t *testing.T) {
	store := &fakeStore{records: []types.CandidateRecord{
		{Skills: "Python", PredictedScore: 10},
		{Skills: "Python, Go", PredictedScore: 30},
	}}
	rr := doRequest(t, newTestServer(store), httptest.NewRequest("GET", "/analytics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp AnalyticsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 20.0, resp.AverageScore)
	require.NotEmpty(t, resp.TopSkills)
	assert.Equal(t, "Python", resp.TopSkills[0].Skill)
	assert.Len(t, resp.ScoreHistogram, 10)
}

func buildDocx(t *testing.T, lines ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document><w:body>`)
	for _, line := range lines {
		body.WriteString(`<w:p><w:r><w:t>` + line + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func multipartParseRequest(t *testing.T, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	for name, data := range files {
		fw, err := mw.CreateFormFile("resumes", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParse(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(store)

	doc := buildDocx(t, "Jane Doe", "jane@example.com", "Skills: Python, SQL")
	req := multipartParseRequest(t,
		map[string]string{"job_description": "Python developer"},
		map[string][]byte{"jane.docx": doc, "notes.txt": []byte("skip me")},
	)

	rr := doRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result.Records, 1)
	assert.Equal(t, "jane.docx", result.Records[0].Filename)
	assert.Equal(t, "jane@example.com", result.Records[0].Email)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "notes.txt", result.Skipped[0].Filename)

	assert.Len(t, store.records, 1, "processed record persisted")
}

func TestParse_RequiresFiles(t *testing.T) {
	req := multipartParseRequest(t, map[string]string{"job_description": "x"}, nil)
	rr := doRequest(t, newTestServer(&fakeStore{}), req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParse_MutuallyExclusiveJobSources(t *testing.T) {
	req := multipartParseRequest(t, map[string]string{
		"job_description":     "inline",
		"job_description_url": "https://example.com/jd",
	}, map[string][]byte{"a.docx": buildDocx(t, "x")})

	rr := doRequest(t, newTestServer(&fakeStore{}), req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParse_InvalidJobURL(t *testing.T) {
	req := multipartParseRequest(t, map[string]string{
		"job_description_url": "not a url",
	}, map[string][]byte{"a.docx": buildDocx(t, "x")})

	rr := doRequest(t, newTestServer(&fakeStore{}), req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParse_NotMultipart(t *testing.T) {
	req := httptest.NewRequest("POST", "/parse", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")

	rr := doRequest(t, newTestServer(&fakeStore{}), req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	rr := doRequest(t, newTestServer(&fakeStore{}), httptest.NewRequest("OPTIONS", "/candidates", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
