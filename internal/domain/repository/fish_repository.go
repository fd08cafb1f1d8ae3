package repository

import (
	"context"

	"github.com/google/uuid"

	"pond/internal/domain/entity"
	"pond/internal/errors"
)

// ErrFishNotFound is returned when no fish matches the lookup key.
var ErrFishNotFound = errors.New("fish not found")

// VoteDirection is the direction of a gallery vote.
type VoteDirection int

const (
	VoteUp   VoteDirection = 1
	VoteDown VoteDirection = -1
)

// ListFishParams narrows and orders a gallery listing.
type ListFishParams struct {
	OrderBy   string     // One of "created_at", "score", "hot_score". Invalid values fall back to created_at.
	Ascending bool       // Sort direction; default is descending.
	Limit     int        // Capped by the implementation.
	Random    bool       // Random order overrides OrderBy.
	UserID    *uuid.UUID // Filter by owner.
	IsVisible *bool      // Filter by visibility.
	Deleted   *bool      // Filter by soft-delete flag.
}

// FishRepository manages persistence of gallery doodles and reports.
type FishRepository interface {
	// Create persists a new doodle row.
	Create(ctx context.Context, fish *entity.Fish) error

	// FindByID retrieves a single doodle.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Fish, error)

	// List retrieves doodles matching the given params.
	List(ctx context.Context, params ListFishParams) ([]*entity.Fish, error)

	// Vote applies an up or down vote as a single atomic counter update and
	// returns the updated row. Returns ErrFishNotFound for unknown ids.
	Vote(ctx context.Context, id uuid.UUID, direction VoteDirection) (*entity.Fish, error)

	// ReassignOwner moves every doodle owned by fromID to toID. Used when an
	// anonymous visitor registers or logs in. Returns the number of rows moved.
	ReassignOwner(ctx context.Context, fromID, toID uuid.UUID) (int64, error)

	// CreateReport records a complaint about a doodle.
	CreateReport(ctx context.Context, report *entity.Report) error
}
