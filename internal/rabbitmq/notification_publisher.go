package rabbitmq

import (
	"github.com/streadway/amqp"
)

// NotificationPublisher публикует события уведомлений в обменник notifications.
// Оборачивает канал, чтобы бизнес-логика не зависела от amqp напрямую.
type NotificationPublisher struct {
	ch *amqp.Channel
}

// NewNotificationPublisher создает новый NotificationPublisher.
func NewNotificationPublisher(ch *amqp.Channel) *NotificationPublisher {
	return &NotificationPublisher{ch: ch}
}

// Publish отправляет событие с ключом маршрутизации пользовательских уведомлений.
func (p *NotificationPublisher) Publish(event any) error {
	return PublishMessage(p.ch, Exchange, RoutingKeyUser, event)
}
