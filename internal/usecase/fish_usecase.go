package usecase

import (
	"context"

	"pond/internal/domain/entity"
	"pond/internal/domain/repository"
)

// UploadFishInput carries a decoded multipart upload.
type UploadFishInput struct {
	Image           []byte
	Artist          string
	UserID          string // Optional; a fresh anonymous id is generated when absent.
	NeedsModeration bool
}

// VoteInput applies a gallery vote.
type VoteInput struct {
	FishID string
	Vote   string // "up" or "down"
}

// ReportInput records a complaint about a doodle.
type ReportInput struct {
	FishID    string
	Reason    string
	UserAgent string
	URL       string
}

// FishUsecase defines the interface for gallery operations.
type FishUsecase interface {
	// List retrieves doodles matching the given params.
	List(ctx context.Context, params repository.ListFishParams) ([]*entity.Fish, error)

	// Get retrieves a single doodle by id.
	Get(ctx context.Context, id string) (*entity.Fish, error)

	// Vote applies an up or down vote and returns the updated doodle.
	Vote(ctx context.Context, input *VoteInput) (*entity.Fish, error)

	// Upload stores the image and records the doodle.
	Upload(ctx context.Context, input *UploadFishInput) (*entity.Fish, error)

	// Report records a complaint.
	Report(ctx context.Context, input *ReportInput) error
}
