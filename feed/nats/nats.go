// Package nats provides a NATS Core feed. This is the production-shaped
// ingress: an account-notification relay publishes envelopes to per-program
// subjects and the monitor subscribes to them here.
package nats

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"

	"github.com/jobgrid/jobgrid/feed"
)

// FeedName is the name used to register this feed.
const FeedName = "nats"

// ConnectionName identifies jobgrid connections on the NATS server.
const ConnectionName = "jobgrid"

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(cfg nats.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return nats.NewPublisher(cfg, logger)
}

// SubscriberFactory allows overriding the subscriber creation for testing.
var SubscriberFactory = func(cfg nats.SubscriberConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	return nats.NewSubscriber(cfg, logger)
}

func init() {
	feed.RegisterWithCapabilities(FeedName, Build, feed.NATSCapabilities)
}

// Build creates a new NATS feed. Connection retries are left to the NATS
// client; stream-level failures still surface to the monitor's supervisor,
// which owns reconnect policy.
func Build(ctx context.Context, cfg feed.Config, logger watermill.LoggerAdapter) (feed.Feed, error) {
	url := cfg.GetNATSURL()
	marshaler := &nats.NATSMarshaler{}
	natsOptions := []natsgo.Option{
		natsgo.Name(ConnectionName),
		natsgo.RetryOnFailedConnect(true),
	}

	publisher, err := PublisherFactory(
		nats.PublisherConfig{
			URL:         url,
			Marshaler:   marshaler,
			NatsOptions: natsOptions,
		},
		logger,
	)
	if err != nil {
		return feed.Feed{}, err
	}

	subscriber, err := SubscriberFactory(
		nats.SubscriberConfig{
			URL:         url,
			Unmarshaler: marshaler,
			NatsOptions: natsOptions,
		},
		logger,
	)
	if err != nil {
		return feed.Feed{}, err
	}

	return feed.Feed{
		Publisher:  publisher,
		Subscriber: subscriber,
	}, nil
}

// Capabilities returns the capabilities of this feed.
func Capabilities() feed.Capabilities {
	return feed.NATSCapabilities
}
