package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pond/config"
	deliverycontext "pond/internal/delivery/context"
	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/lifecycle"
	"pond/internal/domain/repository"
	"pond/internal/domain/service"
	"pond/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	fishRepo          repository.FishRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailer            service.Mailer
	resetManager      *ResetTokenManager
	minPasswordLength int
	siteBaseURL       string
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FishRepo     repository.FishRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	ResetManager *ResetTokenManager
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		fishRepo:          params.FishRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		mailer:            params.Mailer,
		resetManager:      params.ResetManager,
		minPasswordLength: params.Config.Auth.MinPasswordLength,
		siteBaseURL:       params.Config.Site.BaseURL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail trims surrounding whitespace and lowercases the address. All
// lookups and storage use the normalized form, so casing differences at login
// or reset time cannot split one account into two.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and returns a session for it. The unique
// email constraint in the store is the authoritative conflict signal; there is
// no pre-check lookup.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("email is required")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrWeakPassword.WrapMessage(
			fmt.Sprintf("password shorter than %d characters", srv.minPasswordLength))
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = entity.DefaultDisplayName
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))
	srv.mergeAnonymousFish(ctx, input.AnonymousID, user.ID)

	return srv.issueSession(user)
}

// Login verifies credentials and returns a session. Unknown emails and wrong
// passwords share one failure so the endpoint cannot be used to probe which
// addresses hold accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("missing email or password")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash so the unknown-email path costs about the same
			// as a wrong-password verification.
			_, _ = srv.hasher.Hash(input.Password)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))
	srv.mergeAnonymousFish(ctx, input.AnonymousID, user.ID)

	return srv.issueSession(user)
}

// ForgotPassword issues a reset token and dispatches the reset email on a
// background goroutine. It reports success whether or not the email belongs
// to an account, and never waits on the mail relay.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	email := normalizeEmail(input.Email)
	if email == "" {
		return domainerrors.ErrInvalidInput.WrapMessage("email is required")
	}

	reset, err := srv.resetManager.Issue(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	resetLink := srv.buildResetLink(input.BaseURL, reset.Token, email)
	logger := srv.log(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		subject, body := buildResetEmail(resetLink)
		if err := srv.mailer.Send(sendCtx, email, subject, body); err != nil {
			logger.Error("Failed to send password reset email", slog.Any("error", err))

			return
		}

		logger.Info("Password reset email sent")
	}()

	return nil
}

// ResetPassword claims a reset token and overwrites the password. The claim
// and the credential write share one transaction, so a token is consumed if
// and only if the new password landed. The hash is computed before the
// transaction opens to keep the KDF out of the lock window.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email := normalizeEmail(input.Email)
	if email == "" || input.Token == "" {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("missing email or token")
	}
	if len(input.NewPassword) < srv.minPasswordLength {
		return domainerrors.ErrWeakPassword.WrapMessage(
			fmt.Sprintf("password shorter than %d characters", srv.minPasswordLength))
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.resetManager.ClaimWith(ctx, repoFactory.PasswordResetRepo(), input.Token, email); err != nil {
			return err
		}

		if err := repoFactory.UserRepo().UpdatePasswordHash(ctx, email, passwordHash); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// A valid token for an email with no account gets the same
				// answer as a bad token.
				return domainerrors.ErrResetTokenInvalid.WrapMessage("no account for claimed token")
			}

			return errors.Wrap(err, "failed to update password hash")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// issueSession signs a session token for the user.
func (srv *authService) issueSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{Token: token, User: user}, nil
}

// mergeAnonymousFish moves doodles drawn before registration onto the account.
// It is best-effort: a malformed id or a failed update is logged and the
// session proceeds.
func (srv *authService) mergeAnonymousFish(ctx context.Context, anonymousID string, userID uuid.UUID) {
	if anonymousID == "" {
		return
	}

	anonID, err := uuid.Parse(anonymousID)
	if err != nil || anonID == userID {
		return
	}

	moved, err := srv.fishRepo.ReassignOwner(ctx, anonID, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to merge anonymous fish",
			slog.String("userID", userID.String()), slog.Any("error", err))

		return
	}

	if moved > 0 {
		srv.log(ctx).Info("Merged anonymous fish",
			slog.String("userID", userID.String()), slog.Int64("moved", moved))
	}
}

// buildResetLink assembles the link embedded in the reset email. An explicit
// base from the request wins over the configured site origin.
func (srv *authService) buildResetLink(baseURL, token, email string) string {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = srv.siteBaseURL
	}

	query := url.Values{}
	query.Set("token", token)
	query.Set("email", email)

	return strings.TrimRight(base, "/") + "/reset-password?" + query.Encode()
}

func buildResetEmail(resetLink string) (subject, body string) {
	subject = "Reset your Pond password"
	body = fmt.Sprintf(`<p>Someone asked to reset the password for this email address.</p>
<p><a href="%s">Choose a new password</a></p>
<p>The link expires shortly and works once. If this wasn't you, you can ignore this email.</p>`, resetLink)

	return subject, body
}
