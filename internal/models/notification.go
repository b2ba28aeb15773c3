package models

import "time"

// Типы уведомлений.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification — запись ленты уведомлений пользователя.
// Лента только пополняется: записи не удаляются, IsRead хранится,
// но ни один сценарий его не переключает.
type Notification struct {
	ID        string    `json:"id"`         // Идентификатор уведомления
	UserUID   string    `json:"user_uid"`   // Получатель
	Title     string    `json:"title"`      // Заголовок
	Message   string    `json:"message"`    // Текст сообщения
	Type      string    `json:"type"`       // info, success, warning или error
	CreatedAt time.Time `json:"created_at"` // Момент создания
	IsRead    bool      `json:"is_read"`    // Признак прочтения
}

// NotificationEvent — сообщение, публикуемое в RabbitMQ при каждом
// добавлении уведомления. Email заполняется, если пользователь оставил
// адрес при регистрации; воркер рассылки пропускает события без адреса.
type NotificationEvent struct {
	UserUID  string `json:"user_uid"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}
