package server

import (
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/analytics"
	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes bounds the total size of one multipart parse request.
const maxUploadBytes = 64 << 20

// CandidatesResponse represents the response for GET /candidates
type CandidatesResponse struct {
	Candidates []types.CandidateRecord `json:"candidates"`
	Count      int                     `json:"count"`
}

// AnalyticsResponse represents the response for GET /analytics
type AnalyticsResponse struct {
	Total          int                    `json:"total"`
	AverageScore   float64                `json:"average_score"`
	TopSkills      []analytics.SkillCount `json:"top_skills"`
	ScoreHistogram []analytics.Bin        `json:"score_histogram"`
}

// handleParse accepts a multipart upload of resume files plus a job
// description and runs the screening pipeline over the batch.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	opts := types.ParseOptions{
		JobDescription:    r.FormValue("job_description"),
		JobDescriptionURL: r.FormValue("job_description_url"),
	}
	if opts.JobDescription != "" && opts.JobDescriptionURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description and job_description_url are mutually exclusive")
		return
	}
	if err := opts.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid parse options: "+err.Error())
		return
	}

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one resume file is required")
		return
	}

	jobDescription := opts.JobDescription
	if opts.JobDescriptionURL != "" {
		fetched, err := ingestion.FromURL(r.Context(), opts.JobDescriptionURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job description: "+err.Error())
			return
		}
		jobDescription = fetched
	}

	docs := make([]pipeline.Document, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to open upload "+fh.Filename+": "+err.Error())
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read upload "+fh.Filename+": "+err.Error())
			return
		}
		docs = append(docs, pipeline.Document{Filename: fh.Filename, Data: data})
	}

	result, err := s.runner.Run(r.Context(), docs, jobDescription)
	if err != nil {
		s.log.Error("parse batch failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Parse run failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListCandidates returns stored candidates, optionally filtered by
// q (substring), min_score and has_email query parameters.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.log.Error("failed to list candidates", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}

	filtered := types.FilterCandidates(records, filter)
	s.jsonResponse(w, http.StatusOK, CandidatesResponse{Candidates: filtered, Count: len(filtered)})
}

// handleExportCSV streams stored candidates as a CSV download. It honors the
// same filter parameters as GET /candidates.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.log.Error("failed to list candidates", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="candidates.csv"`)
	if err := export.WriteStored(w, types.FilterCandidates(records, filter)); err != nil {
		s.log.Error("failed to write CSV export", zap.Error(err))
	}
}

// handleClearCandidates deletes every stored candidate.
func (s *Server) handleClearCandidates(w http.ResponseWriter, r *http.Request) {
	removed, err := s.store.ClearCandidates(r.Context())
	if err != nil {
		s.log.Error("failed to clear candidates", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear candidates")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]int64{"removed": removed})
}

// handleAnalytics summarizes the stored candidate pool.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.log.Error("failed to list candidates", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyticsResponse{
		Total:          len(records),
		AverageScore:   analytics.AverageScore(records),
		TopSkills:      analytics.TopSkills(records, 12),
		ScoreHistogram: analytics.ScoreHistogram(records, 10),
	})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// filterFromQuery parses and validates the candidate filter parameters.
func filterFromQuery(r *http.Request) (types.CandidateFilter, error) {
	filter := types.CandidateFilter{
		Query:    r.URL.Query().Get("q"),
		HasEmail: r.URL.Query().Get("has_email"),
	}

	if raw := r.URL.Query().Get("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, &ErrValidation{Field: "min_score", Message: "must be a number"}
		}
		filter.MinScore = v
	}

	if err := filter.Validate(); err != nil {
		return filter, &ErrValidation{Field: "filter", Message: err.Error()}
	}
	return filter, nil
}
