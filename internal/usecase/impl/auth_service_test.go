package impl

import (
	"context"
	"testing"

	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/domain/repository"
	"classifieds/internal/domain/service"
	mockRepo "classifieds/internal/mocks/repository"
	mockSvc "classifieds/internal/mocks/service"
	"classifieds/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.FakeTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &mockRepo.FakeTransactionManager{Users: userRepo}
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "pw1").Return("digest", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "alice" && u.Email == "a@x.com" && u.PasswordHash == "digest"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 1
	}).Return(nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.User.ID)
	assert.NotEqual(t, "pw1", out.User.PasswordHash)
}

func TestAuthService_Register_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		field string
	}{
		{"username", usecase.RegisterInput{Email: "a@x.com", Password: "pw"}, "username"},
		{"email", usecase.RegisterInput{Username: "alice", Password: "pw"}, "email"},
		{"password", usecase.RegisterInput{Username: "alice", Email: "a@x.com"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "pw1").Return("digest", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "alice", PasswordHash: "digest"}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "pw1", "digest").Return(true)
	fx.tokenService.On("Issue", int64(1)).Return("tok-1", nil)
	fx.userRepo.On("SetToken", ctx, int64(1), "tok-1").Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", out.Token)
	assert.True(t, out.User.HasToken())
	assert.Equal(t, 1, fx.txManager.Committed)
}

func TestAuthService_Login_WrongPasswordIssuesNoToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(&entity.User{ID: 1, PasswordHash: "digest"}, nil)
	fx.hasher.On("Check", "wrong", "digest").Return(false)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 1, fx.txManager.RolledBack)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingPassword(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fx.txManager.Calls)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("ClearToken", ctx, int64(1)).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, &entity.User{ID: 1}))
}

func TestAuthService_ResolveBearer_HeaderFormat(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"scheme only", "Bearer"},
		{"wrong scheme", "Basic abc"},
		{"three parts", "Bearer abc def"},
		{"empty token", "Bearer "},
		{"no scheme", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.ResolveBearer(context.Background(), tt.header)

			assert.ErrorIs(t, err, domainerrors.ErrAuthHeaderInvalid)
		})
	}
}

func TestAuthService_ResolveBearer_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	token := "tok-1"
	user := &entity.User{ID: 1, Username: "alice", Token: &token}

	fx.userRepo.On("FindByToken", ctx, "tok-1").Return(user, nil)
	fx.tokenService.On("ExpiryEnforced").Return(false)

	got, err := fx.service.ResolveBearer(ctx, "bearer tok-1")
	require.NoError(t, err)

	assert.Equal(t, user, got)
}

func TestAuthService_ResolveBearer_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByToken", ctx, "stale").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ResolveBearer(ctx, "Bearer stale")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_ResolveBearer_Expiry(t *testing.T) {
	tests := []struct {
		name      string
		claims    *service.Claims
		verifyErr error
		wantErr   error
	}{
		{
			name:   "valid",
			claims: &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}},
		},
		{
			name:      "expired",
			verifyErr: service.ErrTokenExpired,
			wantErr:   domainerrors.ErrTokenExpired,
		},
		{
			name:      "malformed",
			verifyErr: service.ErrTokenMalformed,
			wantErr:   domainerrors.ErrTokenInvalid,
		},
		{
			name:    "subject mismatch",
			claims:  &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "2"}},
			wantErr: domainerrors.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.userRepo.On("FindByToken", ctx, "tok").Return(&entity.User{ID: 1}, nil)
			fx.tokenService.On("ExpiryEnforced").Return(true)
			fx.tokenService.On("Verify", "tok").Return(tt.claims, tt.verifyErr)

			user, err := fx.service.ResolveBearer(ctx, "Bearer tok")
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
