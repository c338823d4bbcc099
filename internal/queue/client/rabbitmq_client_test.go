package client

import (
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardDeliveriesCarriesRetryAttempts(t *testing.T) {
	c := &RabbitMqClient{queueName: VaultEventsQueueName, stopCh: make(chan struct{})}
	deliveries := make(chan amqp.Delivery, 1)
	output := make(chan QueueMessage)
	go c.forwardDeliveries(deliveries, output)

	deliveries <- amqp.Delivery{
		Body:        []byte(`{"event_type":2}`),
		DeliveryTag: 7,
		Headers:     amqp.Table{retryAttemptHeader: int32(3)},
	}

	message := <-output
	assert.Equal(t, `{"event_type":2}`, message.Body)
	assert.Equal(t, "7", message.Receipt)
	assert.Equal(t, int32(3), message.RetryAttempts)

	close(deliveries)
	_, open := <-output
	assert.False(t, open, "output closes when the broker channel closes")
}

func TestForwardDeliveriesStopsWhileBlockedOnSend(t *testing.T) {
	c := &RabbitMqClient{queueName: VaultEventsQueueName, stopCh: make(chan struct{})}
	deliveries := make(chan amqp.Delivery, 1)
	output := make(chan QueueMessage) // never read, the send blocks
	done := make(chan struct{})
	go func() {
		c.forwardDeliveries(deliveries, output)
		close(done)
	}()

	deliveries <- amqp.Delivery{Body: []byte("{}"), DeliveryTag: 1}
	// Give the goroutine time to pick the delivery up and block on the send.
	time.Sleep(20 * time.Millisecond)
	close(c.stopCh)

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "forwarding goroutine did not exit after stop")
	}
}
