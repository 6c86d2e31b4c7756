// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "classifieds/internal/delivery/context"
	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/domain/repository"
	"classifieds/internal/domain/service"
	"classifieds/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores a new user with a hashed password.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := requireFields("username", input.Username, "email", input.Email, "password", input.Password); err != nil {
		return nil, err
	}
	if err := checkMaxLength("username", input.Username, maxUsernameLength); err != nil {
		return nil, err
	}
	if err := checkMaxLength("email", input.Email, maxEmailLength); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and replaces the user's stored token with a fresh one.
// Lookup, check and token write share one transaction so they run against the primary.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := requireFields("username", input.Username, "password", input.Password); err != nil {
		return nil, err
	}

	var output *usecase.LoginOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByUsername(ctx, input.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for login")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		token, err := srv.tokenService.Issue(user.ID)
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
		}

		if err := userRepo.SetToken(ctx, user.ID, token); err != nil {
			return errors.Wrap(err, "failed to store token")
		}

		user.Token = &token
		output = &usecase.LoginOutput{Token: token, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", output.User.ID))

	return output, nil
}

// Logout clears the stored token so it stops authenticating immediately.
func (srv *authService) Logout(ctx context.Context, user *entity.User) error {
	if err := srv.userRepo.ClearToken(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "logout")
		}

		return errors.Wrap(err, "failed to clear token")
	}

	srv.log(ctx).Debug("User logged out", slog.Int64("userID", user.ID))

	return nil
}

// ResolveBearer parses "Bearer <token>" and returns the user whose stored token matches.
// When token expiry is enforced the token must also verify and name the same user.
func (srv *authService) ResolveBearer(ctx context.Context, authorization string) (*entity.User, error) {
	token, ok := parseBearer(authorization)
	if !ok {
		return nil, domainerrors.ErrAuthHeaderInvalid
	}

	var user *entity.User
	// Read from the primary so a token written by a just-finished login is visible.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.NewUserRepository().FindByToken(ctx, token)

		return findErr
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token")
	}

	if srv.tokenService.ExpiryEnforced() {
		if err := srv.checkClaims(token, user.ID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (srv *authService) checkClaims(token string, userID int64) error {
	claims, err := srv.tokenService.Verify(token)
	if errors.Is(err, service.ErrTokenExpired) {
		return domainerrors.ErrTokenExpired
	}
	if err != nil {
		return domainerrors.ErrTokenInvalid
	}

	subject, err := claims.UserID()
	if err != nil || subject != userID {
		return domainerrors.ErrTokenInvalid
	}

	return nil
}

// parseBearer accepts exactly two space-separated parts with a case-insensitive "Bearer" scheme.
func parseBearer(header string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(header), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
