package coaching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GroupStore persists groups, memberships and check-ins. Group management is
// an admin feature and requires the database; there is no file fallback.
type GroupStore struct {
	pool *pgxpool.Pool
}

func NewGroupStore(pool *pgxpool.Pool) *GroupStore {
	return &GroupStore{pool: pool}
}

func (s *GroupStore) ready() error {
	if s.pool == nil {
		return fmt.Errorf("group management requires a database")
	}
	return nil
}

// CreateGroup inserts a new cohort and returns it with id and timestamp set.
func (s *GroupStore) CreateGroup(ctx context.Context, name string, program Program, coachID string) (*Group, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	group := &Group{
		ID:        uuid.NewString(),
		Name:      name,
		Program:   program,
		CoachID:   coachID,
		CreatedAt: time.Now().UTC(),
	}
	query := `
		INSERT INTO coaching_groups (id, name, program, coach_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.pool.Exec(ctx, query, group.ID, group.Name, group.Program, group.CoachID, group.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

// ListGroups returns all cohorts, newest first.
func (s *GroupStore) ListGroups(ctx context.Context) ([]*Group, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query := `SELECT id, name, program, coach_id, created_at FROM coaching_groups ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Program, &g.CoachID, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

// AddMember upserts a membership, reactivating a previously removed member.
func (s *GroupStore) AddMember(ctx context.Context, groupID, userID string, role Role) (*Membership, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	m := &Membership{
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		Status:   StatusActive,
		JoinedAt: time.Now().UTC(),
	}
	query := `
		INSERT INTO group_memberships (group_id, user_id, role, status, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (group_id, user_id)
		DO UPDATE SET role = EXCLUDED.role, status = EXCLUDED.status
	`
	if _, err := s.pool.Exec(ctx, query, m.GroupID, m.UserID, m.Role, m.Status, m.JoinedAt); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return m, nil
}

// RemoveMember marks a membership removed; history is kept for the admin
// panel rather than deleting the row.
func (s *GroupStore) RemoveMember(ctx context.Context, groupID, userID string) error {
	if err := s.ready(); err != nil {
		return err
	}

	query := `UPDATE group_memberships SET status = $3 WHERE group_id = $1 AND user_id = $2`
	tag, err := s.pool.Exec(ctx, query, groupID, userID, StatusRemoved)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("membership not found: %s in %s", userID, groupID)
	}
	return nil
}

// ListMembers returns a group's memberships, active first then by join date.
func (s *GroupStore) ListMembers(ctx context.Context, groupID string) ([]*Membership, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query := `
		SELECT group_id, user_id, role, status, joined_at
		FROM group_memberships
		WHERE group_id = $1
		ORDER BY status = 'active' DESC, joined_at ASC
	`
	rows, err := s.pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Membership
	for rows.Next() {
		var m Membership
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.Role, &m.Status, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}

// RecordCheckIn stores an MIO weekly check-in.
func (s *GroupStore) RecordCheckIn(ctx context.Context, checkIn *CheckIn) error {
	if err := s.ready(); err != nil {
		return err
	}

	if checkIn.ID == "" {
		checkIn.ID = uuid.NewString()
	}
	checkIn.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO mio_checkins (id, user_id, group_id, week, temperament, streak_days, completed_lessons, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.pool.Exec(ctx, query,
		checkIn.ID, checkIn.UserID, checkIn.GroupID, checkIn.Week, checkIn.Temperament,
		checkIn.StreakDays, checkIn.CompletedLessons, checkIn.Notes, checkIn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}
	return nil
}

// LatestCheckIn returns a user's most recent check-in, (nil, nil) when none.
func (s *GroupStore) LatestCheckIn(ctx context.Context, userID string) (*CheckIn, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, group_id, week, temperament, streak_days, completed_lessons, notes, created_at
		FROM mio_checkins
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var c CheckIn
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.GroupID, &c.Week, &c.Temperament,
		&c.StreakDays, &c.CompletedLessons, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return nil, nil
	}
	return &c, nil
}
