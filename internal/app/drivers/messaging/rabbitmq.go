package messaging

import (
	"fmt"
	"hemolink-service/internal/app/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQChannel(driverConfig *config.DriverConfig, queueName string) *amqp.Channel {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	conn, err := amqp.Dial(connectionString)
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitmq: %s", err.Error())
	}

	channel, err := conn.Channel()
	if err != nil {
		logrus.Fatalf("Failed to open rabbitmq channel: %s", err.Error())
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		logrus.Fatalf("Failed to declare rabbitmq queue %s: %s", queueName, err.Error())
	}

	logrus.Println("Successfully connected to rabbitmq")
	return channel
}
