// Package analytics computes dashboard summaries over stored candidates.
package analytics

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// SkillCount is one entry of a skill frequency ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Bin is one bucket of a score histogram over the closed range [Low, High).
// The last bucket includes its upper bound so a perfect score is counted.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// TopSkills ranks skills by how many candidates list them, most frequent
// first. Ties break alphabetically so the ranking is deterministic.
func TopSkills(records []types.CandidateRecord, n int) []SkillCount {
	if n <= 0 {
		return []SkillCount{}
	}

	counts := make(map[string]int)
	for i := range records {
		seen := make(map[string]bool)
		for _, skill := range records[i].SkillList() {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			counts[skill]++
		}
	}

	ranked := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		ranked = append(ranked, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return strings.ToLower(ranked[i].Skill) < strings.ToLower(ranked[j].Skill)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ScoreHistogram buckets predicted scores into equal-width bins over [0, 100].
func ScoreHistogram(records []types.CandidateRecord, bins int) []Bin {
	if bins <= 0 {
		bins = 10
	}

	width := 100.0 / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = float64(i) * width
		out[i].High = float64(i+1) * width
	}

	for i := range records {
		score := records[i].PredictedScore
		if score < 0 || score > 100 {
			continue
		}
		idx := int(score / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// AverageScore returns the mean predicted score, or 0 for no records.
func AverageScore(records []types.CandidateRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for i := range records {
		sum += records[i].PredictedScore
	}
	return sum / float64(len(records))
}
