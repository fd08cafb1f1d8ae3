// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Fish is a single uploaded doodle in the gallery.
type Fish struct {
	ID              uuid.UUID // The unique identifier for the doodle.
	UserID          uuid.UUID // Owning user id. May belong to an anonymous visitor until they register.
	Artist          string    // Display name of the artist at upload time.
	Image           string    // Public URL of the stored image.
	IsVisible       bool      // Hidden doodles are excluded from default listings.
	Deleted         bool      // Soft-delete flag set by moderation.
	Upvotes         int
	Downvotes       int
	Score           int // Upvotes minus downvotes, maintained by the store.
	HotScore        float64
	NeedsModeration bool
	CreatedAt       time.Time
}

// Report records a visitor complaint about a doodle. Reports are append-only.
type Report struct {
	ID        uuid.UUID
	FishID    uuid.UUID
	Reason    string
	UserAgent string
	URL       string
	CreatedAt time.Time
}
