package storage

import (
	"errors"

	"eventHub/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// EventFilter narrows event listings. Zero values disable a condition.
type EventFilter struct {
	Status     models.EventStatus
	CategoryID int64
	CreatorID  int64
	// Search is a case-insensitive substring over title, description and location.
	Search string
}
