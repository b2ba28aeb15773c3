// Package services содержит логику бизнес-уровня для регистрации,
// аутентификации и защиты от перебора пароля.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/investment-club/internal/config"
	"github.com/magabrotheeeer/investment-club/internal/lib/jwt"
	"github.com/magabrotheeeer/investment-club/internal/lib/password"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// Ограничение длины пароля пришло из продукта: пароль — до шести символов.
const maxPasswordLen = 6

// Три неудачные попытки подряд закрывают вход на сутки.
const (
	maxLoginAttempts = 3
	lockoutTTL       = 24 * time.Hour
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени или ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AttemptStore хранит счетчики неудачных попыток входа и ключи блокировки.
// Реализуется redis-кешем: TTL ключей дает автоматическое истечение блокировки.
type AttemptStore interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	attempts AttemptStore
	jwtMaker jwt.Maker
	admin    config.AdminCredentials
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, attempts AttemptStore, jwtMaker jwt.Maker,
	admin config.AdminCredentials, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		attempts: attempts,
		jwtMaker: jwtMaker,
		admin:    admin,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной
// ролью "user" и сразу выдает ему токен сессии. Пароль длиннее шести
// символов отклоняется с ErrPasswordTooLong.
func (s *AuthService) Register(ctx context.Context, username, rawPassword, email string) (string, error) {
	if len(rawPassword) > maxPasswordLen {
		return "", models.ErrPasswordTooLong
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", err
	}
	s.log.Info("registered new user", slog.String("username", username))
	return s.jwtMaker.GenerateToken(username, models.RoleUser, uid)
}

// Login проверяет учетные данные и генерирует JWT.
//
// Фиксированная пара администратора проверяется до обращения к базе и дает
// административную сессию без записи в таблице пользователей. Для обычных
// пользователей три неудачные попытки подряд ставят блокировку на 24 часа;
// пока она действует, вход закрыт даже с верным паролем. Успешный вход
// сбрасывает счетчик.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	var locked bool
	if found, err := s.attempts.Get(lockoutKey(username), &locked); err != nil {
		s.log.Warn("failed to check lockout key", sl.Err(err))
	} else if found {
		return "", "", models.ErrLockedOut
	}

	if username == s.admin.AdminUsername && rawPassword == s.admin.AdminPassword {
		token, err = s.jwtMaker.GenerateToken(username, models.RoleAdmin, "")
		if err != nil {
			return "", "", err
		}
		return token, models.RoleAdmin, nil
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", "", s.registerFailure(username)
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", s.registerFailure(username)
	}
	if user.IsBlocked {
		return "", "", models.ErrAccountBlocked
	}

	if err := s.attempts.Invalidate(attemptsKey(username)); err != nil {
		s.log.Warn("failed to reset login attempts", sl.Err(err))
	}

	token, err = s.jwtMaker.GenerateToken(user.Username, user.Role, user.UUID)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе,
// роль и признак валидности.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, string, bool, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, "", false, err
	}
	user := &models.User{
		Username: claims.Username,
		Role:     claims.Role,
		UUID:     claims.UserUID,
	}
	return user, claims.Role, true, nil
}

// registerFailure увеличивает счетчик неудачных попыток и на третьей
// подряд ставит ключ блокировки с суточным TTL.
func (s *AuthService) registerFailure(username string) error {
	var count int
	if _, err := s.attempts.Get(attemptsKey(username), &count); err != nil {
		s.log.Warn("failed to read login attempts", sl.Err(err))
	}
	count++
	if count >= maxLoginAttempts {
		if err := s.attempts.Set(lockoutKey(username), true, lockoutTTL); err != nil {
			s.log.Warn("failed to set lockout key", sl.Err(err))
		}
		if err := s.attempts.Invalidate(attemptsKey(username)); err != nil {
			s.log.Warn("failed to reset login attempts", sl.Err(err))
		}
		s.log.Info("login locked out", slog.String("username", username))
		return models.ErrLockedOut
	}
	if err := s.attempts.Set(attemptsKey(username), count, lockoutTTL); err != nil {
		s.log.Warn("failed to store login attempts", sl.Err(err))
	}
	return models.ErrInvalidCredentials
}

func attemptsKey(username string) string {
	return fmt.Sprintf("login:attempts:%s", username)
}

func lockoutKey(username string) string {
	return fmt.Sprintf("login:lockout:%s", username)
}
