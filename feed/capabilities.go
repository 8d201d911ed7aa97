package feed

// Capabilities describes the delivery properties of a feed backend. The
// monitor's arrival-order guarantee only holds end to end when the ingress
// feed preserves ordering, so callers should check before wiring one in.
type Capabilities struct {
	// Name is the human-readable name of the feed.
	Name string

	// SupportsOrdering indicates the feed delivers messages in publish
	// order (within a partition/stream where applicable).
	SupportsOrdering bool

	// SupportsAck indicates the feed supports explicit acknowledgment.
	SupportsAck bool

	// SupportsNack indicates the feed supports negative acknowledgment.
	SupportsNack bool

	// SupportsBatching indicates the feed can batch multiple messages.
	SupportsBatching bool

	// SupportsPartitioning indicates the feed partitions messages.
	SupportsPartitioning bool

	// MaxMessageSize is the maximum message size in bytes (0 = unknown).
	MaxMessageSize int64
}

// PreservesOrder reports whether the feed can uphold the monitor's
// arrival-order guarantee end to end.
func (c Capabilities) PreservesOrder() bool {
	return c.SupportsOrdering
}

// Predefined capability sets for the bundled feeds.
var (
	// ChannelCapabilities for the in-memory Go channel feed.
	ChannelCapabilities = Capabilities{
		Name:             "channel",
		SupportsOrdering: true,
		SupportsAck:      true,
		SupportsNack:     true,
	}

	// NATSCapabilities for the NATS Core feed. A single core NATS
	// subscription delivers in order per publisher, but the server gives
	// no guarantee across reconnects.
	NATSCapabilities = Capabilities{
		Name:           "nats",
		MaxMessageSize: 1048576,
	}

	// KafkaCapabilities for the Apache Kafka feed.
	KafkaCapabilities = Capabilities{
		Name:                 "kafka",
		SupportsOrdering:     true,
		SupportsAck:          true,
		SupportsBatching:     true,
		SupportsPartitioning: true,
		MaxMessageSize:       1048576,
	}

	// RabbitMQCapabilities for the RabbitMQ/AMQP feed.
	RabbitMQCapabilities = Capabilities{
		Name:             "rabbitmq",
		SupportsOrdering: true,
		SupportsAck:      true,
		SupportsNack:     true,
	}

	// AWSCapabilities for the AWS SNS/SQS feed.
	AWSCapabilities = Capabilities{
		Name:             "aws",
		SupportsOrdering: true,
		SupportsAck:      true,
		SupportsNack:     true,
		SupportsBatching: true,
		MaxMessageSize:   262144,
	}

	// HTTPCapabilities for the webhook-style HTTP feed.
	HTTPCapabilities = Capabilities{
		Name: "http",
	}
)

// GetCapabilities returns the capabilities for a feed by name, using the
// default registry. Returns a zero Capabilities struct for unknown feeds.
func GetCapabilities(feedName string) Capabilities {
	return DefaultRegistry.GetCapabilities(feedName)
}
