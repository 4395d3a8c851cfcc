package queue

import "context"

// NoopBroker discards publishes and never delivers. It backs broker-less
// development runs with the in-memory store.
type NoopBroker struct{}

func (NoopBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return nil
}

func (NoopBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	return nil
}

func (NoopBroker) Close() error {
	return nil
}
