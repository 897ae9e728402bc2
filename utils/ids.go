package utils

import (
	"github.com/google/uuid"
)

// NewBidID returns a fresh, server-issued bid identifier
func NewBidID() string {
	return uuid.NewString()
}

// NewProjectID returns a fresh project identifier
func NewProjectID() string {
	return uuid.NewString()
}

// NewMessageID returns a fresh chat message identifier
func NewMessageID() string {
	return uuid.NewString()
}
