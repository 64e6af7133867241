package models

// RoleType defines the role a person plays in the record keeper
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// CourseID identifies a course. It is opaque: callers compare it for
// equality and never do arithmetic on it.
type CourseID string

// separator is the rule printed under course and enrollment headings
const separator = "--------------------"
