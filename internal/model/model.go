// Package model defines the domain models for Taskline.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Key constants for database key generation.
const (
	PrefixTask  = "task"
	KeySettings = "settings"
	KeyTaskSeq  = "taskseq"
)
