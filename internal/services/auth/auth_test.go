package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/investment-club/internal/config"
	"github.com/magabrotheeeer/investment-club/internal/lib/jwt"
	"github.com/magabrotheeeer/investment-club/internal/lib/password"
	"github.com/magabrotheeeer/investment-club/internal/models"
	services "github.com/magabrotheeeer/investment-club/internal/services/auth"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Хранилище попыток входа в памяти, повторяет контракт redis-кеша.
type AttemptStoreFake struct {
	m map[string]any
}

func NewAttemptStoreFake() *AttemptStoreFake {
	return &AttemptStoreFake{m: make(map[string]any)}
}

func (f *AttemptStoreFake) Get(key string, result any) (bool, error) {
	v, ok := f.m[key]
	if !ok {
		return false, nil
	}
	switch r := result.(type) {
	case *int:
		*r = v.(int)
	case *bool:
		*r = v.(bool)
	}
	return true, nil
}

func (f *AttemptStoreFake) Set(key string, value any, _ time.Duration) error {
	f.m[key] = value
	return nil
}

func (f *AttemptStoreFake) Invalidate(key string) error {
	delete(f.m, key)
	return nil
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newAuthService(repo *UserRepoMock, attempts *AttemptStoreFake) *services.AuthService {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	admin := config.AdminCredentials{AdminUsername: "admin", AdminPassword: "root66"}
	return services.NewAuthService(repo, attempts, maker, admin, newNoopLogger())
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		email      string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "successful registration",
			username: "testuser",
			password: "pass66",
			email:    "test@example.com",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Username == "testuser" &&
						user.Email == "test@example.com" &&
						user.PasswordHash != "" &&
						user.Role == models.RoleUser
				})).Return("some-uuid-string", nil).Once()
			},
		},
		{
			name:       "password longer than six characters",
			username:   "testuser",
			password:   "toolong",
			email:      "test@example.com",
			setupMocks: func(_ *UserRepoMock) {},
			wantErr:    models.ErrPasswordTooLong,
		},
		{
			name:     "username already taken",
			username: "testuser",
			password: "pass66",
			email:    "",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", models.ErrUsernameTaken).Once()
			},
			wantErr: models.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := newAuthService(repo, NewAttemptStoreFake())
			tt.setupMocks(repo)

			token, err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_AdminBackdoor(t *testing.T) {
	repo := new(UserRepoMock)
	svc := newAuthService(repo, NewAttemptStoreFake())

	token, role, err := svc.Login(context.Background(), "admin", "root66")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
	assert.NotEmpty(t, token)

	// Пара администратора не сверяется с базой
	repo.AssertNotCalled(t, "GetUserByUsername")
}

func TestAuthService_Login_LockoutAfterThreeFailures(t *testing.T) {
	hash, err := password.GetHash("pass66")
	require.NoError(t, err)
	user := &models.User{UUID: "uid-1", Username: "testuser", PasswordHash: hash, Role: models.RoleUser}

	repo := new(UserRepoMock)
	repo.On("GetUserByUsername", mock.Anything, "testuser").Return(user, nil)
	store := NewAttemptStoreFake()
	svc := newAuthService(repo, store)

	_, _, err = svc.Login(context.Background(), "testuser", "wrong1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "testuser", "wrong2")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "testuser", "wrong3")
	assert.ErrorIs(t, err, models.ErrLockedOut)

	// Блокировка действует даже с верным паролем
	_, _, err = svc.Login(context.Background(), "testuser", "pass66")
	assert.ErrorIs(t, err, models.ErrLockedOut)
}

func TestAuthService_Login_SuccessResetsAttempts(t *testing.T) {
	hash, err := password.GetHash("pass66")
	require.NoError(t, err)
	user := &models.User{UUID: "uid-1", Username: "testuser", PasswordHash: hash, Role: models.RoleUser}

	repo := new(UserRepoMock)
	repo.On("GetUserByUsername", mock.Anything, "testuser").Return(user, nil)
	store := NewAttemptStoreFake()
	svc := newAuthService(repo, store)

	_, _, err = svc.Login(context.Background(), "testuser", "wrong1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "testuser", "wrong2")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	token, role, err := svc.Login(context.Background(), "testuser", "pass66")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
	assert.NotEmpty(t, token)

	// Счетчик сброшен: две новые неудачи еще не блокируют
	_, _, err = svc.Login(context.Background(), "testuser", "wrong1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "testuser", "wrong2")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	hash, err := password.GetHash("pass66")
	require.NoError(t, err)
	user := &models.User{UUID: "uid-1", Username: "testuser", PasswordHash: hash,
		Role: models.RoleUser, IsBlocked: true}

	repo := new(UserRepoMock)
	repo.On("GetUserByUsername", mock.Anything, "testuser").Return(user, nil)
	svc := newAuthService(repo, NewAttemptStoreFake())

	_, _, err = svc.Login(context.Background(), "testuser", "pass66")
	assert.ErrorIs(t, err, models.ErrAccountBlocked)
}

func TestAuthService_ValidateToken(t *testing.T) {
	repo := new(UserRepoMock)
	svc := newAuthService(repo, NewAttemptStoreFake())
	repo.On("RegisterUser", mock.Anything, mock.Anything).Return("uid-1", nil).Once()

	token, err := svc.Register(context.Background(), "testuser", "pass66", "")
	require.NoError(t, err)

	user, role, valid, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, models.RoleUser, role)

	_, _, valid, err = svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
	assert.False(t, valid)
}
