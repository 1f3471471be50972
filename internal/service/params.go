package service

import "time"

type RegisterInput struct {
	Email    string
	Username string
	Name     string
	Password string
}

// Update inputs follow fallback-to-existing semantics: a zero value (empty
// string, false, zero or nil time) keeps the stored value.

type UserUpdate struct {
	Email    string
	Username string
	Name     string
	Profile  string
}

type ProjectInput struct {
	Name        string
	Description string
	Creator     int
	Ends        time.Time
	Labels      []int
}

type ProjectUpdate struct {
	Name        string
	Description string
	Ends        time.Time
	Completed   bool
}

type TaskInput struct {
	Name        string
	Description string
	Creator     int
	ProjectID   int
	Due         *time.Time
	Labels      []int
}

type TaskUpdate struct {
	Name        string
	Description string
	Due         *time.Time
	Completed   bool
}

type LabelInput struct {
	Name  string
	Color string
	Owner int
}

type LabelUpdate struct {
	Name  string
	Color string
}

// orString mirrors "value or stored": only the empty string keeps fallback.
func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orTime(v, fallback time.Time) time.Time {
	if v.IsZero() {
		return fallback
	}
	return v
}

func orTimePtr(v, fallback *time.Time) *time.Time {
	if v == nil || v.IsZero() {
		return fallback
	}
	return v
}

// orBool mirrors "value or stored": false never overwrites true.
func orBool(v, fallback bool) bool {
	return v || fallback
}
