package models

import "time"

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventPublished, EventCancelled:
		return true
	}
	return false
}

// Event is a scheduled happening users can register for.
// Capacity 0 means unlimited, Price 0 means free. Price is in minor currency units.
type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	Location    string      `json:"location"`
	CategoryID  *int64      `json:"category_id,omitempty"`
	CreatorID   int64       `json:"creator_id"`
	Status      EventStatus `json:"status"`
	Capacity    int         `json:"capacity"`
	Price       int64       `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Event) IsPublished() bool {
	return e.Status == EventPublished
}

func (e *Event) IsFree() bool {
	return e.Price == 0
}

// HasCapacityLimit reports whether registrations are bounded for this event.
func (e *Event) HasCapacityLimit() bool {
	return e.Capacity > 0
}
