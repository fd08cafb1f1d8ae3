package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/repository"
	"pond/internal/errors"
	mockRepo "pond/internal/mocks/repository"
	mockSvc "pond/internal/mocks/service"
	"pond/internal/usecase"
)

// fishServiceFixtures holds all test dependencies for fish service tests.
type fishServiceFixtures struct {
	service    usecase.FishUsecase
	fishRepo   *mockRepo.MockFishRepository
	imageStore *mockSvc.MockImageStore
}

func createTestFishService(t *testing.T) fishServiceFixtures {
	fishRepo := mockRepo.NewMockFishRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFishService(FishServiceParams{
		FishRepo:   fishRepo,
		ImageStore: imageStore,
		Logger:     logger,
	})

	return fishServiceFixtures{
		service:    service,
		fishRepo:   fishRepo,
		imageStore: imageStore,
	}
}

func TestFishService_List(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	visible := true
	params := repository.ListFishParams{OrderBy: "hot_score", Limit: 20, IsVisible: &visible}
	expected := []*entity.Fish{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.fishRepo.EXPECT().
		List(ctx, params).
		Return(expected, nil)

	fishes, err := fx.service.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, expected, fishes)
}

func TestFishService_Get_MalformedID(t *testing.T) {
	fx := createTestFishService(t)

	fish, err := fx.service.Get(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Nil(t, fish)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestFishService_Get_NotFound(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.fishRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrFishNotFound)

	fish, err := fx.service.Get(ctx, id.String())
	require.Error(t, err)
	assert.Nil(t, fish)
	assert.True(t, errors.Is(err, domainerrors.ErrFishNotFound))
}

func TestFishService_Vote_Up(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	id := uuid.New()
	updated := &entity.Fish{ID: id, Upvotes: 5, Score: 4}

	fx.fishRepo.EXPECT().
		Vote(ctx, id, repository.VoteUp).
		Return(updated, nil)

	fish, err := fx.service.Vote(ctx, &usecase.VoteInput{FishID: id.String(), Vote: "up"})
	require.NoError(t, err)
	assert.Equal(t, updated, fish)
}

func TestFishService_Vote_Down(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	id := uuid.New()
	updated := &entity.Fish{ID: id, Downvotes: 1, Score: -1}

	fx.fishRepo.EXPECT().
		Vote(ctx, id, repository.VoteDown).
		Return(updated, nil)

	fish, err := fx.service.Vote(ctx, &usecase.VoteInput{FishID: id.String(), Vote: "down"})
	require.NoError(t, err)
	assert.Equal(t, updated, fish)
}

func TestFishService_Vote_InvalidDirection(t *testing.T) {
	fx := createTestFishService(t)

	fish, err := fx.service.Vote(context.Background(), &usecase.VoteInput{
		FishID: uuid.NewString(),
		Vote:   "sideways",
	})
	require.Error(t, err)
	assert.Nil(t, fish)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestFishService_Upload_Success(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	image := []byte("png-bytes")

	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), image, "image/png").
		Return("https://cdn.example.com/fish/abc.png", nil)

	fx.fishRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Fish")).
		Run(func(ctx context.Context, fish *entity.Fish) {
			assert.Equal(t, ownerID, fish.UserID)
			assert.Equal(t, "Tester", fish.Artist)
			assert.Equal(t, "https://cdn.example.com/fish/abc.png", fish.Image)
			assert.True(t, fish.IsVisible)
			assert.False(t, fish.NeedsModeration)
		}).
		Return(nil)

	fish, err := fx.service.Upload(ctx, &usecase.UploadFishInput{
		Image:  image,
		Artist: "Tester",
		UserID: ownerID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, fish)
	assert.NotEqual(t, uuid.Nil, fish.ID)
}

func TestFishService_Upload_AnonymousOwnerGenerated(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()

	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("https://cdn.example.com/fish/abc.png", nil)

	fx.fishRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Fish")).
		Run(func(ctx context.Context, fish *entity.Fish) {
			assert.NotEqual(t, uuid.Nil, fish.UserID)
			assert.Equal(t, entity.DefaultDisplayName, fish.Artist)
		}).
		Return(nil)

	_, err := fx.service.Upload(ctx, &usecase.UploadFishInput{Image: []byte("png-bytes")})
	require.NoError(t, err)
}

func TestFishService_Upload_ModerationHidesFish(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()

	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("https://cdn.example.com/fish/abc.png", nil)

	fx.fishRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Fish")).
		Run(func(ctx context.Context, fish *entity.Fish) {
			assert.False(t, fish.IsVisible)
			assert.True(t, fish.NeedsModeration)
		}).
		Return(nil)

	_, err := fx.service.Upload(ctx, &usecase.UploadFishInput{
		Image:           []byte("png-bytes"),
		NeedsModeration: true,
	})
	require.NoError(t, err)
}

func TestFishService_Upload_EmptyImage(t *testing.T) {
	fx := createTestFishService(t)

	fish, err := fx.service.Upload(context.Background(), &usecase.UploadFishInput{})
	require.Error(t, err)
	assert.Nil(t, fish)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestFishService_Upload_ImageTooLarge(t *testing.T) {
	fx := createTestFishService(t)

	fish, err := fx.service.Upload(context.Background(), &usecase.UploadFishInput{
		Image: make([]byte, maxImageBytes+1),
	})
	require.Error(t, err)
	assert.Nil(t, fish)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestFishService_Report_Success(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.fishRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Fish{ID: id}, nil)

	fx.fishRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(ctx context.Context, report *entity.Report) {
			assert.Equal(t, id, report.FishID)
			assert.Equal(t, "inappropriate", report.Reason)
		}).
		Return(nil)

	err := fx.service.Report(ctx, &usecase.ReportInput{
		FishID: id.String(),
		Reason: "  inappropriate ",
	})
	require.NoError(t, err)
}

func TestFishService_Report_UnknownFish(t *testing.T) {
	fx := createTestFishService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.fishRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrFishNotFound)

	err := fx.service.Report(ctx, &usecase.ReportInput{FishID: id.String(), Reason: "spam"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFishNotFound))
}
