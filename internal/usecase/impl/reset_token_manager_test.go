package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/repository"
	"pond/internal/errors"
	mockRepo "pond/internal/mocks/repository"
)

func TestResetTokenManager_Issue(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	var stored *entity.PasswordReset

	resetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordReset")).
		Run(func(ctx context.Context, reset *entity.PasswordReset) {
			stored = reset
		}).
		Return(nil)

	reset, err := manager.Issue(ctx, "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, reset)
	assert.Equal(t, stored, reset)

	_, err = uuid.Parse(reset.Token)
	assert.NoError(t, err, "token must be a UUID")
	assert.Equal(t, "user@example.com", reset.Email)
	assert.False(t, reset.Used)
	assert.WithinDuration(t, reset.CreatedAt.Add(30*time.Minute), reset.ExpiresAt, time.Second)
}

func TestResetTokenManager_Issue_DistinctTokens(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()

	resetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordReset")).
		Return(nil).
		Times(2)

	first, err := manager.Issue(ctx, "user@example.com")
	require.NoError(t, err)
	second, err := manager.Issue(ctx, "user@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestResetTokenManager_Claim_Success(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	token := uuid.NewString()

	resetRepo.EXPECT().
		Claim(ctx, token, "user@example.com").
		Return(true, nil)

	err := manager.Claim(ctx, token, "user@example.com")
	require.NoError(t, err)
}

func TestResetTokenManager_Claim_UnknownToken(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	token := uuid.NewString()

	resetRepo.EXPECT().
		Claim(ctx, token, "user@example.com").
		Return(false, nil)
	resetRepo.EXPECT().
		FindByToken(ctx, token).
		Return(nil, repository.ErrResetTokenNotFound)

	err := manager.Claim(ctx, token, "user@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestResetTokenManager_Claim_ExpiredToken(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	token := uuid.NewString()

	resetRepo.EXPECT().
		Claim(ctx, token, "user@example.com").
		Return(false, nil)
	resetRepo.EXPECT().
		FindByToken(ctx, token).
		Return(&entity.PasswordReset{
			Token:     token,
			Email:     "user@example.com",
			Used:      false,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	err := manager.Claim(ctx, token, "user@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenExpired))
}

func TestResetTokenManager_Claim_EmailMismatch(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	token := uuid.NewString()

	resetRepo.EXPECT().
		Claim(ctx, token, "other@example.com").
		Return(false, nil)
	resetRepo.EXPECT().
		FindByToken(ctx, token).
		Return(&entity.PasswordReset{
			Token:     token,
			Email:     "user@example.com",
			Used:      false,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)

	err := manager.Claim(ctx, token, "other@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

// memResetRepo is an in-memory PasswordResetRepository with the same
// conditional-write claim semantics as the SQL implementation. It backs the
// concurrency test below.
type memResetRepo struct {
	mu      sync.Mutex
	records map[string]*entity.PasswordReset
}

func newMemResetRepo() *memResetRepo {
	return &memResetRepo{records: make(map[string]*entity.PasswordReset)}
}

func (r *memResetRepo) Create(_ context.Context, reset *entity.PasswordReset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *reset
	r.records[reset.Token] = &copied

	return nil
}

func (r *memResetRepo) FindByToken(_ context.Context, token string) (*entity.PasswordReset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[token]
	if !ok {
		return nil, repository.ErrResetTokenNotFound
	}

	copied := *rec

	return &copied, nil
}

func (r *memResetRepo) Claim(_ context.Context, token, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[token]
	if !ok || rec.Email != email || rec.Used || !rec.ExpiresAt.After(time.Now()) {
		return false, nil
	}

	rec.Used = true

	return true, nil
}

func TestResetTokenManager_Claim_ExpiredLeavesRecordUntouched(t *testing.T) {
	resetRepo := newMemResetRepo()
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	token := uuid.NewString()
	require.NoError(t, resetRepo.Create(ctx, &entity.PasswordReset{
		Token:     token,
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	err := manager.Claim(ctx, token, "user@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenExpired))

	rec, err := resetRepo.FindByToken(ctx, token)
	require.NoError(t, err)
	assert.False(t, rec.Used, "a failed claim must not consume the token")
}

func TestResetTokenManager_Claim_ExactlyOnceUnderConcurrency(t *testing.T) {
	resetRepo := newMemResetRepo()
	manager := NewResetTokenManager(resetRepo, newTestConfig())

	ctx := context.Background()
	reset, err := manager.Issue(ctx, "user@example.com")
	require.NoError(t, err)

	const attempts = 32

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = manager.Claim(ctx, reset.Token, "user@example.com")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrResetTokenUsed))
	}
	assert.Equal(t, 1, successes, "exactly one concurrent claim must win")
}
