package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a planned journey belonging to one user.
// UserID is the owner's email — the foreign key into the users collection.
// Trips are append-only: never mutated, never deleted.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// DateLayout is the wire format for trip dates as submitted by forms and
// shown in views.
const DateLayout = "2006-01-02"

// Dates returns the trip's date range formatted for display,
// e.g. "2024-01-01 - 2024-01-10".
func (t Trip) Dates() string {
	return t.StartDate.Format(DateLayout) + " - " + t.EndDate.Format(DateLayout)
}
