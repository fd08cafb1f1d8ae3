// Package repository defines the persistence contracts consumed by the
// usecase layer. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"pond/internal/errors"

	"github.com/google/uuid"

	"pond/internal/domain/entity"
)

// Sentinel errors shared by all UserRepository implementations.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when an insert hits the unique email
	// constraint. The constraint violation is the authoritative conflict
	// signal; callers must not rely on a pre-check.
	ErrEmailExists = errors.New("email already registered")
)

// UserRepository manages persistence of User entities.
type UserRepository interface {
	// Create persists a new user. The store generates the id and timestamps
	// and writes them back onto the entity. Returns ErrEmailExists when the
	// unique email constraint rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePasswordHash overwrites the stored credential for the user with
	// the given email. Returns ErrUserNotFound when no row was updated.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}
