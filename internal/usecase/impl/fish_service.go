package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "pond/internal/delivery/context"
	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/repository"
	"pond/internal/domain/service"
	"pond/internal/usecase"
)

// maxImageBytes caps a single doodle upload. Canvas exports are small; anything
// bigger is not a doodle.
const maxImageBytes = 2 << 20

// fishService implements the FishUsecase interface.
type fishService struct {
	fishRepo   repository.FishRepository
	imageStore service.ImageStore
	logger     *slog.Logger
}

// FishServiceParams holds dependencies for fishService, injected by Fx.
type FishServiceParams struct {
	fx.In

	FishRepo   repository.FishRepository
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewFishService is the constructor for fishService.
func NewFishService(params FishServiceParams) usecase.FishUsecase {
	return &fishService{
		fishRepo:   params.FishRepo,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

func (srv *fishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves doodles matching the given params.
func (srv *fishService) List(ctx context.Context, params repository.ListFishParams) ([]*entity.Fish, error) {
	fishes, err := srv.fishRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fish")
	}

	return fishes, nil
}

// Get retrieves a single doodle by id.
func (srv *fishService) Get(ctx context.Context, id string) (*entity.Fish, error) {
	fishID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("malformed fish id")
	}

	fish, err := srv.fishRepo.FindByID(ctx, fishID)
	if err != nil {
		if errors.Is(err, repository.ErrFishNotFound) {
			return nil, domainerrors.ErrFishNotFound.WrapMessage("fish not found")
		}

		return nil, errors.Wrap(err, "failed to find fish")
	}

	return fish, nil
}

// Vote applies an up or down vote and returns the updated doodle.
func (srv *fishService) Vote(ctx context.Context, input *usecase.VoteInput) (*entity.Fish, error) {
	fishID, err := uuid.Parse(input.FishID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("malformed fish id")
	}

	var direction repository.VoteDirection
	switch strings.ToLower(input.Vote) {
	case "up":
		direction = repository.VoteUp
	case "down":
		direction = repository.VoteDown
	default:
		return nil, domainerrors.ErrInvalidInput.WrapMessage("vote must be up or down")
	}

	fish, err := srv.fishRepo.Vote(ctx, fishID, direction)
	if err != nil {
		if errors.Is(err, repository.ErrFishNotFound) {
			return nil, domainerrors.ErrFishNotFound.WrapMessage("fish not found")
		}

		return nil, errors.Wrap(err, "failed to apply vote")
	}

	return fish, nil
}

// Upload stores the image and records the doodle. The doodle id is generated
// here so the blob key and the row agree before either write happens.
func (srv *fishService) Upload(ctx context.Context, input *usecase.UploadFishInput) (*entity.Fish, error) {
	if len(input.Image) == 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("image is required")
	}
	if len(input.Image) > maxImageBytes {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("image too large")
	}

	ownerID, err := uuid.Parse(input.UserID)
	if err != nil {
		// No usable owner id; mint a fresh anonymous one.
		ownerID = uuid.New()
	}

	artist := strings.TrimSpace(input.Artist)
	if artist == "" {
		artist = entity.DefaultDisplayName
	}

	fishID := uuid.New()
	imageURL, err := srv.imageStore.Put(ctx, fmt.Sprintf("fish/%s.png", fishID), input.Image, "image/png")
	if err != nil {
		return nil, errors.Wrap(err, "failed to store fish image")
	}

	fish := &entity.Fish{
		ID:              fishID,
		UserID:          ownerID,
		Artist:          artist,
		Image:           imageURL,
		IsVisible:       !input.NeedsModeration,
		NeedsModeration: input.NeedsModeration,
	}

	if err := srv.fishRepo.Create(ctx, fish); err != nil {
		return nil, errors.Wrap(err, "failed to create fish")
	}

	srv.log(ctx).Info("Fish uploaded",
		slog.String("fishID", fishID.String()), slog.Bool("needsModeration", input.NeedsModeration))

	return fish, nil
}

// Report records a complaint against an existing doodle.
func (srv *fishService) Report(ctx context.Context, input *usecase.ReportInput) error {
	fishID, err := uuid.Parse(input.FishID)
	if err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed fish id")
	}

	if _, err := srv.fishRepo.FindByID(ctx, fishID); err != nil {
		if errors.Is(err, repository.ErrFishNotFound) {
			return domainerrors.ErrFishNotFound.WrapMessage("fish not found")
		}

		return errors.Wrap(err, "failed to find fish")
	}

	report := &entity.Report{
		FishID:    fishID,
		Reason:    strings.TrimSpace(input.Reason),
		UserAgent: input.UserAgent,
		URL:       input.URL,
	}

	if err := srv.fishRepo.CreateReport(ctx, report); err != nil {
		return errors.Wrap(err, "failed to create report")
	}

	srv.log(ctx).Warn("Fish reported", slog.String("fishID", fishID.String()))

	return nil
}
