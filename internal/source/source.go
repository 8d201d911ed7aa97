// Package source adapts feed subscribers to the monitor's Channel contract.
// Notifications travel as JSON envelopes on a per-program topic.
package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	errspkg "github.com/jobgrid/jobgrid/internal/errors"
	"github.com/jobgrid/jobgrid/internal/ids"
	"github.com/jobgrid/jobgrid/internal/jsoncodec"
	"github.com/jobgrid/jobgrid/internal/logging"
	"github.com/jobgrid/jobgrid/internal/monitor"
)

// DefaultTopicPrefix is prepended to the program address to form the
// notification topic.
const DefaultTopicPrefix = "accounts."

// envelope is the wire form of one account-change notification. Data is
// base64-encoded by the JSON codec.
type envelope struct {
	Address string `json:"address"`
	Data    []byte `json:"data"`
}

// FeedChannel implements monitor.Channel on top of any feed subscriber.
type FeedChannel struct {
	sub         message.Subscriber
	topicPrefix string
	log         logging.ServiceLogger
}

// NewFeedChannel wraps a subscriber. An empty topicPrefix falls back to
// DefaultTopicPrefix.
func NewFeedChannel(sub message.Subscriber, topicPrefix string, log logging.ServiceLogger) (*FeedChannel, error) {
	if sub == nil {
		return nil, errspkg.ErrChannelRequired
	}
	if log == nil {
		return nil, errspkg.ErrLoggerRequired
	}
	if topicPrefix == "" {
		topicPrefix = DefaultTopicPrefix
	}
	return &FeedChannel{sub: sub, topicPrefix: topicPrefix, log: log}, nil
}

// Open subscribes to the program's notification topic. Cancelling ctx, or
// closing the returned source, tears the subscription down.
func (f *FeedChannel) Open(ctx context.Context, program string) (monitor.Source, error) {
	subCtx, cancel := context.WithCancel(ctx)
	msgs, err := f.sub.Subscribe(subCtx, f.topicPrefix+program)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("source: subscribe %s%s: %w", f.topicPrefix, program, err)
	}
	return &feedSource{msgs: msgs, cancel: cancel, log: f.log}, nil
}

type feedSource struct {
	msgs      <-chan *message.Message
	cancel    context.CancelFunc
	log       logging.ServiceLogger
	closeOnce sync.Once
}

func (s *feedSource) Receive(ctx context.Context) (monitor.Notification, error) {
	for {
		select {
		case <-ctx.Done():
			return monitor.Notification{}, ctx.Err()
		case msg, ok := <-s.msgs:
			if !ok {
				return monitor.Notification{}, errspkg.ErrSourceClosed
			}
			var env envelope
			if err := jsoncodec.Unmarshal(msg.Payload, &env); err != nil {
				msg.Ack()
				s.log.Error("dropping malformed notification envelope", err, logging.LogFields{
					"message_uuid": msg.UUID,
				})
				continue
			}
			msg.Ack()
			return monitor.Notification{Address: env.Address, Data: env.Data}, nil
		}
	}
}

func (s *feedSource) Close() error {
	s.closeOnce.Do(s.cancel)
	return nil
}

// PublishNotification wraps an account update in the wire envelope and
// publishes it to the program's notification topic. Relays feeding the
// monitor, and tests, use this to stay envelope-compatible.
func PublishNotification(pub message.Publisher, topicPrefix, program, address string, data []byte) error {
	if pub == nil {
		return errspkg.ErrPublisherRequired
	}
	if topicPrefix == "" {
		topicPrefix = DefaultTopicPrefix
	}
	payload, err := jsoncodec.Marshal(envelope{Address: address, Data: data})
	if err != nil {
		return fmt.Errorf("source: marshal envelope for %s: %w", address, err)
	}
	return pub.Publish(topicPrefix+program, message.NewMessage(ids.New(), payload))
}
