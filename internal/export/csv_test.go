package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func sampleRecords() []types.CandidateRecord {
	return []types.CandidateRecord{
		{
			ID:             1,
			Filename:       "jane.pdf",
			Name:           "Jane Doe",
			Email:          "jane@example.com",
			Phone:          "+1 415 555 2671",
			Skills:         "Python, SQL",
			PredictedScore: 23.567,
		},
		{
			ID:             2,
			Filename:       "empty.docx",
			PredictedScore: 0,
		},
	}
}

func TestWriteParsed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteParsed(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"filename", "name", "email", "phone", "skills", "predicted_score"}, rows[0])
	assert.Equal(t, []string{"jane.pdf", "Jane Doe", "jane@example.com", "+1 415 555 2671", "Python, SQL", "23.57"}, rows[1])
	assert.Equal(t, []string{"empty.docx", "", "", "", "", "0.00"}, rows[2])
}

func TestWriteStored_IncludesID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStored(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
}

func TestWriteParsed_QuotesEmbeddedCommas(t *testing.T) {
	records := []types.CandidateRecord{{Filename: "r.pdf", Skills: "Python, SQL, Go"}}

	var buf bytes.Buffer
	require.NoError(t, WriteParsed(&buf, records))

	// The skills cell must survive a CSV round trip as one field.
	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Python, SQL, Go", rows[1][4])
}

func TestWriteParsed_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteParsed(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "header only")
}
