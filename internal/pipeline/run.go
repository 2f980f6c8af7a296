// Package pipeline runs the screening flow over a batch of resume documents:
// extract text, pull out structured fields, score against a job description,
// and persist the result. Failures are isolated per document so one bad file
// never aborts a batch.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/entity"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/types"
)

// Store persists parsed candidates. A nil store makes Run parse-only.
type Store interface {
	InsertCandidate(ctx context.Context, rec *types.CandidateRecord) (int64, error)
}

// Document is one resume file submitted for screening.
type Document struct {
	Filename string
	Data     []byte
}

// Skip records a document that was left out of the batch and why.
type Skip struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Result summarizes one batch run.
type Result struct {
	BatchID uuid.UUID               `json:"batch_id"`
	Records []types.CandidateRecord `json:"records"`
	Skipped []Skip                  `json:"skipped"`
}

// Runner wires the extraction, field and scoring stages together.
type Runner struct {
	store      Store
	taxonomy   fields.Taxonomy
	recognizer entity.Recognizer
	log        *zap.Logger
}

// NewRunner builds a Runner. store may be nil for parse-only runs.
func NewRunner(store Store, taxonomy fields.Taxonomy, recognizer entity.Recognizer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if recognizer == nil {
		recognizer = entity.NewNoop()
	}
	return &Runner{
		store:      store,
		taxonomy:   taxonomy,
		recognizer: recognizer,
		log:        log,
	}
}

// Run processes documents sequentially. It returns an error only when the
// batch as a whole cannot proceed; per-document problems land in Skipped.
func (r *Runner) Run(ctx context.Context, docs []Document, jobDescription string) (*Result, error) {
	result := &Result{
		BatchID: uuid.New(),
		Records: []types.CandidateRecord{},
		Skipped: []Skip{},
	}

	log := r.log.With(zap.String("batch_id", result.BatchID.String()))
	log.Info("starting batch", zap.Int("documents", len(docs)))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch interrupted: %w", err)
		}

		rec, skipReason := r.processOne(ctx, doc, jobDescription)
		if skipReason != "" {
			log.Warn("skipping document",
				zap.String("filename", doc.Filename),
				zap.String("reason", skipReason))
			result.Skipped = append(result.Skipped, Skip{Filename: doc.Filename, Reason: skipReason})
			continue
		}

		log.Info("processed document",
			zap.String("filename", doc.Filename),
			zap.Float64("score", rec.PredictedScore))
		result.Records = append(result.Records, *rec)
	}

	log.Info("batch complete",
		zap.Int("processed", len(result.Records)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

// processOne screens a single document. A non-empty skip reason means the
// document was dropped; otherwise the returned record is complete.
func (r *Runner) processOne(ctx context.Context, doc Document, jobDescription string) (*types.CandidateRecord, string) {
	format, err := extraction.ParseFormat(doc.Filename)
	if err != nil {
		return nil, err.Error()
	}

	res, err := extraction.Extract(doc.Data, format)
	if err != nil {
		return nil, err.Error()
	}
	if res.Empty() {
		reason := "no text extracted"
		if res.Err != nil {
			reason = fmt.Sprintf("no text extracted: %v", res.Err)
		}
		return nil, reason
	}

	f := fields.ExtractAll(res.Text, r.taxonomy, r.recognizer)
	score := matching.Score(res.Text, jobDescription, f)

	rec, err := types.NewCandidateRecord(doc.Filename, f, score)
	if err != nil {
		return nil, fmt.Sprintf("failed to encode fields: %v", err)
	}
	if r.store != nil {
		id, err := r.store.InsertCandidate(ctx, &rec)
		if err != nil {
			return nil, fmt.Sprintf("failed to store candidate: %v", err)
		}
		rec.ID = id
	}
	return &rec, ""
}
