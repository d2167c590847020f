package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"grouphome_coaching/pkg/core/underwriting"
)

// Deal is one saved underwriting analysis: the inputs a user entered plus the
// full computed result at save time.
type Deal struct {
	ID        string                        `json:"id"`
	UserID    string                        `json:"user_id"`
	Name      string                        `json:"name"`
	Inputs    underwriting.CalculatorInputs `json:"inputs"`
	Output    underwriting.AdvancedOutput   `json:"output"`
	Risk      underwriting.RiskAssessment   `json:"risk"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt time.Time                     `json:"updated_at"`
}

// DealStore persists deals. DB primary, file fallback when pool is nil.
type DealStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewDealStore creates a deal store. With a nil pool it writes JSON files
// under dir (defaulting to .cache/deals).
func NewDealStore(pool *pgxpool.Pool, dir string) *DealStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "deals")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] deal store dir: %v\n", err)
		}
	}
	return &DealStore{pool: pool, fileDir: dir}
}

// Save upserts a deal by id.
func (s *DealStore) Save(ctx context.Context, deal *Deal) error {
	deal.UpdatedAt = time.Now().UTC()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = deal.UpdatedAt
	}

	if s.pool != nil {
		inputsJSON, err := json.Marshal(deal.Inputs)
		if err != nil {
			return fmt.Errorf("failed to marshal inputs: %w", err)
		}
		outputJSON, err := json.Marshal(deal.Output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		riskJSON, err := json.Marshal(deal.Risk)
		if err != nil {
			return fmt.Errorf("failed to marshal risk: %w", err)
		}

		query := `
			INSERT INTO underwriting_deals (id, user_id, name, inputs, output, risk, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id)
			DO UPDATE SET
				name = EXCLUDED.name,
				inputs = EXCLUDED.inputs,
				output = EXCLUDED.output,
				risk = EXCLUDED.risk,
				updated_at = EXCLUDED.updated_at
		`
		_, err = s.pool.Exec(ctx, query,
			deal.ID, deal.UserID, deal.Name, inputsJSON, outputJSON, riskJSON,
			deal.CreatedAt, deal.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save deal: %w", err)
		}
		return nil
	}

	fileBytes, err := json.MarshalIndent(deal, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deal: %w", err)
	}
	if err := os.WriteFile(s.dealPath(deal.ID), fileBytes, 0644); err != nil {
		return fmt.Errorf("failed to save deal file: %w", err)
	}
	return nil
}

// Get loads one deal by id; (nil, nil) on not found.
func (s *DealStore) Get(ctx context.Context, id string) (*Deal, error) {
	if s.pool != nil {
		query := `
			SELECT id, user_id, name, inputs, output, risk, created_at, updated_at
			FROM underwriting_deals
			WHERE id = $1
			LIMIT 1
		`
		return scanDeal(s.pool.QueryRow(ctx, query, id))
	}

	bytes, err := os.ReadFile(s.dealPath(id))
	if err != nil {
		return nil, nil
	}
	var deal Deal
	if err := json.Unmarshal(bytes, &deal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deal file: %w", err)
	}
	return &deal, nil
}

// ListByUser returns a user's deals, most recently updated first.
func (s *DealStore) ListByUser(ctx context.Context, userID string) ([]*Deal, error) {
	if s.pool != nil {
		query := `
			SELECT id, user_id, name, inputs, output, risk, created_at, updated_at
			FROM underwriting_deals
			WHERE user_id = $1
			ORDER BY updated_at DESC
		`
		rows, err := s.pool.Query(ctx, query, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list deals: %w", err)
		}
		defer rows.Close()

		var deals []*Deal
		for rows.Next() {
			deal, err := scanDeal(rows)
			if err != nil {
				return nil, err
			}
			deals = append(deals, deal)
		}
		return deals, rows.Err()
	}

	entries, err := os.ReadDir(s.fileDir)
	if err != nil {
		return nil, nil
	}
	var deals []*Deal
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		bytes, err := os.ReadFile(filepath.Join(s.fileDir, entry.Name()))
		if err != nil {
			continue
		}
		var deal Deal
		if err := json.Unmarshal(bytes, &deal); err != nil {
			continue
		}
		if deal.UserID == userID {
			deals = append(deals, &deal)
		}
	}
	return deals, nil
}

// Delete removes a deal.
func (s *DealStore) Delete(ctx context.Context, id string) error {
	if s.pool != nil {
		_, err := s.pool.Exec(ctx, `DELETE FROM underwriting_deals WHERE id = $1`, id)
		return err
	}
	return os.Remove(s.dealPath(id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (*Deal, error) {
	var deal Deal
	var inputsJSON, outputJSON, riskJSON []byte
	err := row.Scan(&deal.ID, &deal.UserID, &deal.Name, &inputsJSON, &outputJSON, &riskJSON,
		&deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return nil, nil // not found
	}
	if err := json.Unmarshal(inputsJSON, &deal.Inputs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deal inputs: %w", err)
	}
	if err := json.Unmarshal(outputJSON, &deal.Output); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deal output: %w", err)
	}
	if err := json.Unmarshal(riskJSON, &deal.Risk); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deal risk: %w", err)
	}
	return &deal, nil
}

func (s *DealStore) dealPath(id string) string {
	return filepath.Join(s.fileDir, id+".json")
}
