package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"grouphome_coaching/pkg/core/underwriting"
)

// DefaultsStore persists each user's calculator defaults, the seed values the
// form is pre-filled with. Absent a row (or a database), the package defaults
// apply.
type DefaultsStore struct {
	pool *pgxpool.Pool
}

func NewDefaultsStore(pool *pgxpool.Pool) *DefaultsStore {
	return &DefaultsStore{pool: pool}
}

// Get returns the user's saved defaults, or the package defaults when none
// are stored.
func (s *DefaultsStore) Get(ctx context.Context, userID string) (underwriting.CalculatorInputs, error) {
	if s.pool == nil {
		return underwriting.DefaultInputs(), nil
	}

	var inputsJSON []byte
	query := `SELECT inputs FROM calculator_defaults WHERE user_id = $1 LIMIT 1`
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&inputsJSON); err != nil {
		return underwriting.DefaultInputs(), nil
	}

	var inputs underwriting.CalculatorInputs
	if err := json.Unmarshal(inputsJSON, &inputs); err != nil {
		return underwriting.DefaultInputs(), fmt.Errorf("failed to unmarshal stored defaults: %w", err)
	}
	return inputs, nil
}

// Save upserts the user's defaults.
func (s *DefaultsStore) Save(ctx context.Context, userID string, inputs underwriting.CalculatorInputs) error {
	if s.pool == nil {
		return fmt.Errorf("defaults persistence requires a database")
	}

	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}

	query := `
		INSERT INTO calculator_defaults (user_id, inputs, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET inputs = EXCLUDED.inputs, updated_at = NOW()
	`
	if _, err := s.pool.Exec(ctx, query, userID, inputsJSON); err != nil {
		return fmt.Errorf("failed to save defaults: %w", err)
	}
	return nil
}
