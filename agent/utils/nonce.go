package utils

import (
	"github.com/google/uuid"
)

// UUID generates a new random UUID with Go's crypto package, and returns the
// value as string. It's used for message @ids.
func UUID() string {
	return uuid.New().String()
}

// ValidUUID tells if s is a UUID in any of the accepted string forms.
func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
