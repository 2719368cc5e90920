package uuidx

import "github.com/google/uuid"

// New returns a fresh v7 UUID. v7 keeps identifiers time-sortable, which
// makes registry listings and logs easier to read.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString is New rendered as its canonical string form.
func NewString() string {
	return New().String()
}
