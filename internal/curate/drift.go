package curate

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadAudit reads an audit report JSON document.
func ReadAudit(path string) (AuditReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return AuditReport{}, fmt.Errorf("read audit report: %w", err)
	}
	var report AuditReport
	if err := json.Unmarshal(content, &report); err != nil {
		return AuditReport{}, fmt.Errorf("parse audit report json: %w", err)
	}
	return report, nil
}

// LevelDelta describes the count and share shift at one level between
// two audit snapshots.
type LevelDelta struct {
	BaselineCount  int     `json:"baseline_count"`
	CandidateCount int     `json:"candidate_count"`
	DeltaCount     int     `json:"delta_count"`
	BaselineShare  float64 `json:"baseline_share"`
	CandidateShare float64 `json:"candidate_share"`
	DeltaShare     float64 `json:"delta_share"`
}

// DriftReport summarizes corpus drift between two audit reports.
type DriftReport struct {
	BaselineRunID     string             `json:"baseline_run_id"`
	CandidateRunID    string             `json:"candidate_run_id"`
	BaselineTotal     int                `json:"baseline_total"`
	CandidateTotal    int                `json:"candidate_total"`
	DeltaTotal        int                `json:"delta_total"`
	BalanceScoreDelta float64            `json:"balance_score_delta"`
	ByLevel           map[int]LevelDelta `json:"by_level"`
}

// CompareAudits compares two audit reports and returns a drift report.
// Levels present in either report appear in the result.
func CompareAudits(baseline AuditReport, candidate AuditReport) *DriftReport {
	byLevel := make(map[int]LevelDelta)
	for level, stats := range baseline.Levels {
		delta := byLevel[level]
		delta.BaselineCount = stats.Count
		delta.BaselineShare = stats.Share
		byLevel[level] = delta
	}
	for level, stats := range candidate.Levels {
		delta := byLevel[level]
		delta.CandidateCount = stats.Count
		delta.CandidateShare = stats.Share
		byLevel[level] = delta
	}
	for level, delta := range byLevel {
		delta.DeltaCount = delta.CandidateCount - delta.BaselineCount
		delta.DeltaShare = delta.CandidateShare - delta.BaselineShare
		byLevel[level] = delta
	}

	return &DriftReport{
		BaselineRunID:     baseline.RunID,
		CandidateRunID:    candidate.RunID,
		BaselineTotal:     baseline.Total,
		CandidateTotal:    candidate.Total,
		DeltaTotal:        candidate.Total - baseline.Total,
		BalanceScoreDelta: candidate.BalanceScore - baseline.BalanceScore,
		ByLevel:           byLevel,
	}
}
