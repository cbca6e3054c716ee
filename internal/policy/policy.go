// Package policy holds the capability and lifecycle checks shared by services.
package policy

import (
	"time"

	"eventHub/internal/models"
)

// DefaultCancelCutoff is how long before the event start cancellation closes.
const DefaultCancelCutoff = 24 * time.Hour

func IsAdmin(u *models.User) bool {
	return u != nil && u.Role == models.RoleAdmin
}

func IsOrganizer(u *models.User) bool {
	return u != nil && u.Role == models.RoleOrganizer
}

func CanCreateEvent(u *models.User) bool {
	return IsOrganizer(u) || IsAdmin(u)
}

func CanEditEvent(u *models.User, e *models.Event) bool {
	return u != nil && (e.CreatorID == u.ID || IsAdmin(u))
}

// CanViewEvent: unpublished events are visible to their creator and admins only.
func CanViewEvent(u *models.User, e *models.Event) bool {
	return e.IsPublished() || CanEditEvent(u, e)
}

func OwnsRegistration(u *models.User, r *models.Registration) bool {
	return u != nil && r.UserID == u.ID
}

// CanCancelRegistration reports whether the event starts strictly later than cutoff from now.
func CanCancelRegistration(e *models.Event, now time.Time, cutoff time.Duration) bool {
	return e.Date.After(now.Add(cutoff))
}

func CanCancel(r *models.Registration, e *models.Event, now time.Time, cutoff time.Duration) bool {
	if r.IsClosed() {
		return false
	}
	return CanCancelRegistration(e, now, cutoff)
}

// RefundQuote is what a cancellation would return for a registration.
func RefundQuote(r *models.Registration, e *models.Event) int64 {
	if e.Price > 0 && r.Status == models.RegistrationConfirmed {
		return e.Price
	}
	return 0
}
