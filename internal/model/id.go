package model

import "github.com/google/uuid"

// NewID returns a fresh record id. Ids are assigned client-side at creation
// time and are immutable thereafter.
func NewID() string {
	return uuid.New().String()
}
