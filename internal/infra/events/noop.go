package events

import "context"

// NoopPublisher заглушка, используется когда Kafka выключена конфигурацией
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(_ context.Context, _ AllocationEvent) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
