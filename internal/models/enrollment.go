package models

import (
	"time"
)

// Enrollment roles and statuses accepted by the store's check constraints.
const (
	RoleStudent = "student"
	RoleTA      = "ta"
	RoleTeacher = "teacher"

	StatusActive    = "active"
	StatusDropped   = "dropped"
	StatusCompleted = "completed"
)

// Enrollment links a user to a class. At most one row may exist per
// (user, class) pair.
type Enrollment struct {
	ID       int       `json:"id" db:"id"`
	UserID   int       `json:"user" db:"user_id"`
	ClassID  int       `json:"class" db:"class_id"`
	Role     string    `json:"role" db:"role"`
	Status   string    `json:"status" db:"status"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}
