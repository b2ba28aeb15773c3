package models

import "errors"

// Доменные ошибки. Все они восстановимые и показываются пользователю
// коротким сообщением; обработчики HTTP сопоставляют их со статусами ответа.
var (
	// ErrInvalidCredentials — пара имя/пароль не совпала ни с одной записью.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountBlocked — аккаунт заблокирован администратором.
	ErrAccountBlocked = errors.New("account is blocked")
	// ErrLockedOut — три неудачные попытки входа подряд, вход закрыт на 24 часа.
	ErrLockedOut = errors.New("too many failed attempts, try again in 24h")
	// ErrPasswordTooLong — пароль длиннее шести символов.
	ErrPasswordTooLong = errors.New("password must be at most 6 characters")
	// ErrUsernameTaken — имя пользователя уже занято.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrConcurrentLimit — у пользователя уже две открытые инвестиции.
	ErrConcurrentLimit = errors.New("limit of 2 open investments reached")
	// ErrNotMatured — дата созревания инвестиции еще не наступила.
	ErrNotMatured = errors.New("investment has not matured yet")
	// ErrInvalidTransition — инвестиция не в том состоянии, из которого
	// допустим запрошенный переход.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotFound — запись не найдена (или принадлежит другому пользователю).
	ErrNotFound = errors.New("not found")
)
