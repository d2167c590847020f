// Package report generates AI coaching reports from calculator outputs and
// MIO check-in data. All financial numbers are computed by the underwriting
// engine and injected into prompts; the model writes narrative around them
// and never alters a computed value.
package report

import (
	"time"

	"grouphome_coaching/pkg/core/underwriting"
)

// Recommendation is the structured half of an underwriting report, parsed
// from model output with the repair ladder in pkg/core/utils.
type Recommendation struct {
	Headline   string   `json:"headline"`
	Action     string   `json:"action"` // proceed | adjust | walk_away
	Priorities []string `json:"priorities"`
}

// UnderwritingReport is a persisted AI report for one deal.
type UnderwritingReport struct {
	ID             string                      `json:"id"`
	UserID         string                      `json:"user_id"`
	DealID         string                      `json:"deal_id,omitempty"`
	Narrative      string                      `json:"narrative"` // markdown
	Recommendation Recommendation              `json:"recommendation"`
	Output         underwriting.AdvancedOutput `json:"output"`
	Risk           underwriting.RiskAssessment `json:"risk"`
	Provider       string                      `json:"provider"`
	GeneratedAt    time.Time                   `json:"generated_at"`
}

// CheckInSummary is the MIO week summary the feedback prompt is built from.
type CheckInSummary struct {
	UserID           string `json:"user_id"`
	Week             int    `json:"week"`
	Temperament      string `json:"temperament"`
	StreakDays       int    `json:"streak_days"`
	CompletedLessons int    `json:"completed_lessons"`
	Notes            string `json:"notes"`
}

// MIOFeedback is a persisted weekly mindset feedback note.
type MIOFeedback struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Week        int       `json:"week"`
	Feedback    string    `json:"feedback"` // markdown
	GeneratedAt time.Time `json:"generated_at"`
}
