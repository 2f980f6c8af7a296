// Package export renders candidate records as CSV for download and reporting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/resume-screener/internal/types"
)

// WriteParsed writes one row per parsed document, without database IDs.
// It is used right after a parse run, before records are persisted anywhere.
func WriteParsed(w io.Writer, records []types.CandidateRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"filename", "name", "email", "phone", "skills", "predicted_score"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range records {
		rec := &records[i]
		row := []string{
			rec.Filename, rec.Name, rec.Email, rec.Phone, rec.Skills,
			formatScore(rec.PredictedScore),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteStored writes one row per stored candidate, including the database ID.
func WriteStored(w io.Writer, records []types.CandidateRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "filename", "name", "email", "phone", "skills", "predicted_score"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range records {
		rec := &records[i]
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Filename, rec.Name, rec.Email, rec.Phone, rec.Skills,
			formatScore(rec.PredictedScore),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
