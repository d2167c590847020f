// Package coaching models the admin side of the platform: coaching groups,
// memberships and MIO weekly check-ins.
package coaching

import "time"

// Program identifies which track a group belongs to.
type Program string

const (
	ProgramGroupHome Program = "grouphome" // business coaching track
	ProgramMIO       Program = "mio"       // Mind Insurance mindset track
)

// Role within a coaching group.
type Role string

const (
	RoleMember Role = "member"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

// MembershipStatus tracks a member's standing in a group.
type MembershipStatus string

const (
	StatusActive  MembershipStatus = "active"
	StatusPaused  MembershipStatus = "paused"
	StatusRemoved MembershipStatus = "removed"
)

// Group is one coaching cohort.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Program   Program   `json:"program"`
	CoachID   string    `json:"coach_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Membership links a user to a group.
type Membership struct {
	GroupID  string           `json:"group_id"`
	UserID   string           `json:"user_id"`
	Role     Role             `json:"role"`
	Status   MembershipStatus `json:"status"`
	JoinedAt time.Time        `json:"joined_at"`
}

// CheckIn is one MIO weekly check-in; these feed the weekly feedback prompt.
type CheckIn struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	GroupID          string    `json:"group_id"`
	Week             int       `json:"week"`
	Temperament      string    `json:"temperament"`
	StreakDays       int       `json:"streak_days"`
	CompletedLessons int       `json:"completed_lessons"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}
