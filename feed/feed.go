// Package feed defines the pluggable broker layer that carries account
// notifications into the monitor and relayed events out of it. Each backend
// lives in its own sub-package and registers itself with the feed registry.
package feed

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Feed combines the publisher and subscriber pair produced by a builder.
// The monitor consumes the subscriber side; the relay uses the publisher.
type Feed struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
}

// Builder is the function signature for creating a feed from config. Each
// feed package provides a Builder that it registers under its name.
type Builder func(ctx context.Context, cfg Config, logger watermill.LoggerAdapter) (Feed, error)

// Config provides the configuration values needed by feeds. The interface
// lets each feed access only the keys it needs without depending on the
// full config package.
type Config interface {
	// GetFeedSystem returns the feed type name.
	GetFeedSystem() string

	// NATS
	GetNATSURL() string

	// Kafka
	GetKafkaBrokers() []string
	GetKafkaConsumerGroup() string

	// RabbitMQ
	GetRabbitMQURL() string

	// HTTP
	GetHTTPServerAddress() string
	GetHTTPPublisherURL() string

	// AWS
	GetAWSRegion() string
	GetAWSAccountID() string
	GetAWSAccessKeyID() string
	GetAWSSecretAccessKey() string
	GetAWSEndpoint() string
}
