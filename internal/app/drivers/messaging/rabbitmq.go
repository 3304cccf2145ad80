package messaging

import (
	"fmt"
	"log"
	"net/url"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/%s",
		url.QueryEscape(driverConfig.RabbitMQ.Username),
		url.QueryEscape(driverConfig.RabbitMQ.Password),
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
		url.PathEscape(driverConfig.RabbitMQ.VHost),
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// DeclareDurableQueue opens a channel and makes sure queueName exists before anything
// is published into it. The caller owns the returned channel.
func DeclareDurableQueue(conn *amqp091.Connection, queueName string) (*amqp091.Channel, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return channel, nil
}
