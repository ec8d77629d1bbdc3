package domain

import "github.com/google/uuid"

// newRunID creates a new unique identifier for a started session.
func newRunID() string {
	return uuid.New().String()
}
