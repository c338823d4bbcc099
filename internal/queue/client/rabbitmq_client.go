package client

import (
	"context"
	"fmt"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"
)

const retryAttemptHeader = "x-retry-attempts"

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	stopCh     chan struct{}
}

func NewRabbitMqClient(queueURL, user, pass, queueName string) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", user, pass, queueURL)

	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	// Publisher confirms so SendMessage fails loudly when the broker does not
	// take the message.
	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &RabbitMqClient{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		stopCh:     make(chan struct{}),
	}, nil
}

// SendMessage publishes a persistent message onto the queue.
func (c *RabbitMqClient) SendMessage(ctx context.Context, messageBody string) error {
	return c.sendMessageWithAttempts(ctx, messageBody, 0)
}

func (c *RabbitMqClient) sendMessageWithAttempts(ctx context.Context, messageBody string, attempts int32) error {
	confirmation, err := c.channel.PublishWithDeferredConfirmWithContext(
		ctx,
		"",          // exchange, the default direct exchange
		c.queueName, // routing key
		true,        // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         []byte(messageBody),
			DeliveryMode: amqp.Persistent,
			Headers: amqp.Table{
				retryAttemptHeader: attempts,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message to queue %s: %w", c.queueName, err)
	}

	confirmed, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm message delivery to queue %s: %w", c.queueName, err)
	}
	if !confirmed {
		return fmt.Errorf("message to queue %s was nacked by the broker", c.queueName)
	}

	return nil
}

// ReceiveMessages starts delivering messages from the queue. Messages stay
// unacknowledged until DeleteMessage is called, so they survive a consumer
// crash.
func (c *RabbitMqClient) ReceiveMessages() (<-chan QueueMessage, error) {
	deliveries, err := c.channel.Consume(
		c.queueName,
		"",    // consumer tag, auto generated
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming from queue %s: %w", c.queueName, err)
	}

	output := make(chan QueueMessage)
	go c.forwardDeliveries(deliveries, output)

	return output, nil
}

func (c *RabbitMqClient) forwardDeliveries(deliveries <-chan amqp.Delivery, output chan<- QueueMessage) {
	defer close(output)
	for {
		select {
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			attempts := int32(0)
			if raw, found := delivery.Headers[retryAttemptHeader]; found {
				if parsed, ok := raw.(int32); ok {
					attempts = parsed
				}
			}
			message := QueueMessage{
				Body:          string(delivery.Body),
				Receipt:       strconv.FormatUint(delivery.DeliveryTag, 10),
				RetryAttempts: attempts,
			}
			// The send must stay stoppable, a consumer that already shut
			// down will never drain the channel.
			select {
			case output <- message:
			case <-c.stopCh:
				return
			}
		case <-c.stopCh:
			return
		}
	}
}

// DeleteMessage acknowledges the message so the broker drops it. The receipt
// is the delivery tag handed out in ReceiveMessages.
func (c *RabbitMqClient) DeleteMessage(receipt string) error {
	deliveryTag, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid receipt %s: %w", receipt, err)
	}
	return c.channel.Ack(deliveryTag, false)
}

// ReQueueMessage publishes a fresh copy of the message with its retry count
// incremented and acknowledges the original, putting it at the back of the
// queue.
func (c *RabbitMqClient) ReQueueMessage(ctx context.Context, message QueueMessage) error {
	err := c.sendMessageWithAttempts(ctx, message.Body, message.IncrementRetryAttempts())
	if err != nil {
		return fmt.Errorf("failed to requeue message: %w", err)
	}

	return c.DeleteMessage(message.Receipt)
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}

// Ping reports whether the connection and channel are still usable. AMQP has
// no ping frame, closed handles are the observable failure mode.
func (c *RabbitMqClient) Ping() error {
	if c.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed for queue %s", c.queueName)
	}
	if c.channel.IsClosed() {
		return fmt.Errorf("rabbitmq channel is closed for queue %s", c.queueName)
	}
	return nil
}

// Stop shuts the consumer down and closes the connection.
func (c *RabbitMqClient) Stop() error {
	close(c.stopCh)

	if err := c.channel.Close(); err != nil {
		return err
	}
	if err := c.connection.Close(); err != nil {
		return err
	}

	return nil
}
