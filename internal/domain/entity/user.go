// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDisplayName is used when a registering client supplies no name.
const DefaultDisplayName = "Anonymous"

// User is the core entity in the system, representing a single account.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated at registration and never reused.
	Email        string    // The normalized (trimmed, lower-cased) login email. Globally unique.
	PasswordHash string    // The self-describing encoded credential secret. Never exposed outside the subsystem.
	DisplayName  string    // Free-text label shown next to the user's fish.
	IsAdmin      bool      // Grants moderation rights. Never settable by the registering client.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
