// Package model defines the core data structures for taskd.
package model

import (
	"regexp"
	"strconv"
	"time"
)

// Default field values applied when a task is created without them.
const (
	DefaultStatus   = "pending"
	DefaultPriority = "medium"
)

// taskIDRegex matches task IDs: one or more ASCII digits, nothing else.
// Leading zeros are allowed and significant ("0001234" != "1234").
var taskIDRegex = regexp.MustCompile(`^[0-9]+$`)

// Task represents a single task record. All fields are free-form strings;
// identity is the ID field and nothing else is constrained.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// ValidTaskID reports whether s is a well-formed task ID.
// Rejects empty strings, letters, mixed alphanumerics, decimals,
// negative signs, whitespace, and punctuation.
func ValidTaskID(s string) bool {
	return taskIDRegex.MatchString(s)
}

// NewTaskID returns a fresh task ID: the decimal string of the current
// Unix-millisecond timestamp. IDs generated within the same millisecond
// collide; delete semantics tolerate duplicates by removing the first match.
func NewTaskID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
