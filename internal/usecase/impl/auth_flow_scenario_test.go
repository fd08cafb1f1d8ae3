package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
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
	"pond/internal/infra/auth"
	mockRepo "pond/internal/mocks/repository"
	mockSvc "pond/internal/mocks/service"
	"pond/internal/usecase"
)

// memUserRepo is an in-memory UserRepository with the same unique-email
// semantics as the real store.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return repository.ErrEmailExists
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.Email] = &stored

	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	found := *user

	return &found, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			found := *user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.PasswordHash = passwordHash

	return nil
}

// memRepoFactory hands the in-memory repositories to transaction callbacks.
type memRepoFactory struct {
	userRepo  *memUserRepo
	resetRepo *memResetRepo
}

func (f *memRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *memRepoFactory) PasswordResetRepo() repository.PasswordResetRepository {
	return f.resetRepo
}

// memTxManager runs the callback directly against the in-memory repositories.
type memTxManager struct {
	factory *memRepoFactory
}

func (tm *memTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

var resetTokenPattern = regexp.MustCompile(`token=([0-9a-fA-F-]+)`)

// TestAuthService_FullPasswordLifecycle drives register, login, forgot and
// reset through the real hasher and token service against in-memory stores.
func TestAuthService_FullPasswordLifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := newMemUserRepo()
	resetRepo := newMemResetRepo()
	txManager := &memTxManager{factory: &memRepoFactory{userRepo: userRepo, resetRepo: resetRepo}}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	sentBodies := make(chan string, 1)
	mailer := mockSvc.NewMockMailer(t)
	mailer.EXPECT().
		Send(mock.Anything, "diver@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _, _, body string) error {
			sentBodies <- body

			return nil
		})

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		FishRepo:     mockRepo.NewMockFishRepository(t),
		Hasher:       auth.NewPBKDF2Hasher(cfg),
		TokenService: tokenService,
		Mailer:       mailer,
		ResetManager: NewResetTokenManager(resetRepo, cfg),
		Config:       cfg,
		Logger:       logger,
	})

	// Register.
	session, err := service.Register(ctx, &usecase.RegisterInput{
		Email:       "Diver@Example.com",
		Password:    "original-password",
		DisplayName: "Diver",
	})
	require.NoError(t, err)
	assert.Equal(t, "diver@example.com", session.User.Email)
	assert.True(t, strings.HasPrefix(session.User.PasswordHash, "pbkdf2_sha256$"))

	claims, err := tokenService.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)

	// Login with the original password.
	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "diver@example.com",
		Password: "original-password",
	})
	require.NoError(t, err)

	// Request a reset and pull the token out of the emailed link.
	require.NoError(t, service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email: "diver@example.com",
	}))

	var body string
	select {
	case body = <-sentBodies:
	case <-time.After(2 * time.Second):
		t.Fatal("reset email was not sent")
	}

	match := resetTokenPattern.FindStringSubmatch(body)
	require.Len(t, match, 2, "reset email should carry the token")
	token := match[1]
	_, err = uuid.Parse(token)
	require.NoError(t, err)

	// Reset the password with the emailed token.
	require.NoError(t, service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "diver@example.com",
		Token:       token,
		NewPassword: "replacement-password",
	}))

	// The old password is dead, the new one works.
	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "diver@example.com",
		Password: "original-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "diver@example.com",
		Password: "replacement-password",
	})
	require.NoError(t, err)

	// The token was consumed by the successful reset.
	err = service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "diver@example.com",
		Token:       token,
		NewPassword: "third-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenUsed))

	// Registering the same email again conflicts.
	_, err = service.Register(ctx, &usecase.RegisterInput{
		Email:    "diver@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}
