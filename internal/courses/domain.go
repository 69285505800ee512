package courses

import "time"

// Course represents a course owned by a user. EstimatedTime and
// MaterialsNeeded are optional.
type Course struct {
	ID              int64
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
	UserID          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Owner is the public projection of the user owning a course.
type Owner struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
}

// CourseWithOwner is a course joined with its owning user.
type CourseWithOwner struct {
	Course
	Owner Owner
}
