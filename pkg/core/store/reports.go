package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"grouphome_coaching/pkg/core/report"
)

// ReportStore persists generated AI reports. Best-effort: report generation
// succeeds even when persistence is unavailable, so callers log rather than
// fail on Save errors.
type ReportStore struct {
	pool *pgxpool.Pool
}

func NewReportStore(pool *pgxpool.Pool) *ReportStore {
	return &ReportStore{pool: pool}
}

// SaveUnderwriting stores an underwriting report.
func (s *ReportStore) SaveUnderwriting(ctx context.Context, rep *report.UnderwritingReport) error {
	if s.pool == nil {
		return fmt.Errorf("report persistence requires a database")
	}

	recJSON, err := json.Marshal(rep.Recommendation)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	outputJSON, err := json.Marshal(rep.Output)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	riskJSON, err := json.Marshal(rep.Risk)
	if err != nil {
		return fmt.Errorf("failed to marshal risk: %w", err)
	}

	query := `
		INSERT INTO underwriting_reports
			(id, user_id, deal_id, narrative, recommendation, output, risk, provider, generated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
	`
	_, err = s.pool.Exec(ctx, query,
		rep.ID, rep.UserID, rep.DealID, rep.Narrative, recJSON, outputJSON, riskJSON,
		rep.Provider, rep.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// SaveMIOFeedback stores a weekly mindset feedback note.
func (s *ReportStore) SaveMIOFeedback(ctx context.Context, fb *report.MIOFeedback) error {
	if s.pool == nil {
		return fmt.Errorf("report persistence requires a database")
	}

	query := `
		INSERT INTO mio_feedback (id, user_id, week, feedback, generated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.pool.Exec(ctx, query, fb.ID, fb.UserID, fb.Week, fb.Feedback, fb.GeneratedAt); err != nil {
		return fmt.Errorf("failed to save mio feedback: %w", err)
	}
	return nil
}

// ListUnderwritingByUser returns report headers for a user, newest first.
func (s *ReportStore) ListUnderwritingByUser(ctx context.Context, userID string) ([]*report.UnderwritingReport, error) {
	if s.pool == nil {
		return nil, nil
	}

	query := `
		SELECT id, user_id, COALESCE(deal_id, ''), narrative, recommendation, provider, generated_at
		FROM underwriting_reports
		WHERE user_id = $1
		ORDER BY generated_at DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*report.UnderwritingReport
	for rows.Next() {
		var rep report.UnderwritingReport
		var recJSON []byte
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.DealID, &rep.Narrative, &recJSON,
			&rep.Provider, &rep.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		if err := json.Unmarshal(recJSON, &rep.Recommendation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
		}
		reports = append(reports, &rep)
	}
	return reports, rows.Err()
}
