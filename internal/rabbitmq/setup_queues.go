package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации в обменнике notifications.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// RoutingKeyUser — ключ маршрутизации пользовательских уведомлений.
const RoutingKeyUser = "user"

// GetNotificationQueues возвращает очереди уведомлений для воркера рассылки.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.user", RoutingKey: RoutingKeyUser},
	}
}
