// Package channel provides an in-memory Go channel feed, useful for tests
// and local development.
package channel

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/jobgrid/jobgrid/feed"
)

// FeedName is the name used to register this feed.
const FeedName = "channel"

// Factory allows overriding the channel creation for testing.
var Factory = func(cfg gochannel.Config, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber) {
	pubSub := gochannel.NewGoChannel(cfg, logger)
	return pubSub, pubSub
}

func init() {
	feed.RegisterWithCapabilities(FeedName, Build, feed.ChannelCapabilities)
}

// Build creates a new in-memory feed.
func Build(ctx context.Context, cfg feed.Config, logger watermill.LoggerAdapter) (feed.Feed, error) {
	pub, sub := Factory(gochannel.Config{}, logger)
	return feed.Feed{
		Publisher:  pub,
		Subscriber: sub,
	}, nil
}

// Capabilities returns the capabilities of this feed.
func Capabilities() feed.Capabilities {
	return feed.ChannelCapabilities
}
