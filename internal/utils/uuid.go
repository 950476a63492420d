package utils

import "github.com/google/uuid"

// NewCycleID returns a time-ordered identifier (UUIDv7) for a submit cycle,
// falling back to a random UUIDv4 if the v7 generator fails.
func NewCycleID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
