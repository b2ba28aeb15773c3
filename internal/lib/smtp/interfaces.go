// Package smtp предоставляет почтовый транспорт для воркера рассылки.
package smtp

import "io"

// Client — минимальная поверхность SMTP-сессии, которую использует
// рассылка уведомлений. Реализуется net/smtp и мокается в тестах.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface устанавливает SMTP-соединение и знает адрес отправителя.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
