// Package relay republishes correlated monitor events to a feed publisher
// so downstream systems can consume them off a broker instead of holding a
// stream open against the monitor.
package relay

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	errspkg "github.com/jobgrid/jobgrid/internal/errors"
	"github.com/jobgrid/jobgrid/internal/jsoncodec"
	"github.com/jobgrid/jobgrid/internal/logging"
	"github.com/jobgrid/jobgrid/internal/monitor"
)

// Relay forwards events one at a time, preserving stream order.
type Relay struct {
	pub   message.Publisher
	topic string
	log   logging.ServiceLogger
}

// New constructs a relay targeting one topic.
func New(pub message.Publisher, topic string, log logging.ServiceLogger) (*Relay, error) {
	switch {
	case pub == nil:
		return nil, errspkg.ErrPublisherRequired
	case topic == "":
		return nil, errspkg.ErrTopicRequired
	case log == nil:
		return nil, errspkg.ErrLoggerRequired
	}
	return &Relay{pub: pub, topic: topic, log: log}, nil
}

// Forward republishes every detailed event until the stream closes or ctx
// is cancelled. A closed stream returns nil; a publish failure stops the
// relay with that error.
func (r *Relay) Forward(ctx context.Context, events <-chan monitor.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.publish(ev.ID, ev.Kind.String(), ev.Address(), ev); err != nil {
				return err
			}
		}
	}
}

// ForwardSimple is Forward for simple-mode streams.
func (r *Relay) ForwardSimple(ctx context.Context, events <-chan monitor.SimpleEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.publish(ev.ID, ev.Kind.String(), ev.Address(), ev); err != nil {
				return err
			}
		}
	}
}

func (r *Relay) publish(id, kind, address string, payload any) error {
	body, err := jsoncodec.Marshal(payload)
	if err != nil {
		return fmt.Errorf("relay: marshal event %s: %w", id, err)
	}
	msg := message.NewMessage(id, body)
	msg.Metadata = message.Metadata{
		"record_kind":     kind,
		"account_address": address,
	}
	r.log.Trace("relaying event", logging.LogFields{"event_id": id, "kind": kind})
	return r.pub.Publish(r.topic, msg)
}
