package state

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		RunID: newRunID(),
		Stdin: os.Stdin,
		start: time.Now(),
	}
}

// newRunID prefers time ordered identifiers so reports sort naturally.
func newRunID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
