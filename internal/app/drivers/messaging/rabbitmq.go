package messaging

import (
	"fmt"
	"log"
	"net/url"
	"pidelocal-service/internal/app/config"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker that receives order events. The connection
// name shows up in the management UI so replicas can be told apart.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	rabbit := driverConfig.RabbitMQ
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/%s",
		url.QueryEscape(rabbit.Username),
		url.QueryEscape(rabbit.Password),
		rabbit.Host,
		rabbit.Port,
		url.PathEscape(rabbit.VHost),
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(rabbit.ConnectionName)

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Heartbeat:  time.Duration(rabbit.HeartbeatInSeconds) * time.Second,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%s: %s", rabbit.Host, rabbit.Port, err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ vhost %q", rabbit.VHost)
	return conn
}
