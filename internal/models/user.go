// Package models содержит доменные структуры инвестиционного клуба:
// пользователей, инвестиции, банковские реквизиты и уведомления,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Роли пользователей в системе.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного участника клуба.
type User struct {
	UUID         string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (опционально, для рассылки уведомлений)
	PasswordHash string    // Хэш пароля пользователя
	Role         string    // Роль пользователя, admin или user
	IsBlocked    bool      // Признак блокировки аккаунта, выставляется администратором
	CreatedAt    time.Time // Дата регистрации
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
// Ограничение длины пароля проверяется в бизнес-логике, а не валидатором,
// чтобы вернуть доменную ошибку ErrPasswordTooLong.
type DummyRegister struct {
	Username string `json:"username" validate:"required,min=3,max=50"`  // Имя пользователя
	Password string `json:"password" validate:"required"`               // Пароль (не более 6 символов)
	Email    string `json:"email,omitempty" validate:"omitempty,email"` // Почта (опционально)
}

// DummyLogin используется для приёма учетных данных из JSON-запроса.
type DummyLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
