// Package jobgrid monitors a job-market ledger program and turns raw
// account-change notifications into typed, ordered event streams. It watches
// three related record kinds (job descriptors, claim records, and market
// definitions) and correlates them so consumers can react to job-lifecycle
// changes without polling.
//
// The core asks collaborators for everything it does not own: a Channel
// delivers raw notifications for one program, a Classifier identifies and
// decodes account payloads, and a Lookup answers on-demand point queries
// during correlation. How bytes become records, and how the underlying
// stream is carried, are deliberately outside this package.
//
// Monitor exposes two modes. Events returns the simple stream: jobs and
// markets only, with claims folded into their owning jobs, so lifecycle
// consumers never track run records themselves. EventsDetailed returns
// jobs, markets, and runs as separate events. Both preserve notification
// arrival order, recover from transport failures by reopening the channel
// after a fixed delay, and stay open until their stop function is called.
//
// # Feeds
//
// The feed packages carry notifications in and relayed events out over
// pluggable brokers: in-memory Go channels for tests, NATS for the
// production notification relay, and Kafka, RabbitMQ, AWS SNS/SQS, or HTTP
// webhooks for event egress via Relay. Each feed registers itself with the
// feed registry; select one with the FeedSystem config key.
//
// # Errors
//
// No error ever reaches a consumer through an event stream. Transport
// failures are recovered internally, malformed notifications are logged and
// dropped, and failed correlation lookups degrade per record kind: a job
// missing its claim is emitted unmerged, a claim missing its job is dropped.
// Persistent failure is observable through the injected logger and the
// Prometheus counters.
package jobgrid
