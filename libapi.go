package jobgrid

import (
	configpkg "github.com/jobgrid/jobgrid/internal/config"
	errspkg "github.com/jobgrid/jobgrid/internal/errors"
	idspkg "github.com/jobgrid/jobgrid/internal/ids"
	jsoncodec "github.com/jobgrid/jobgrid/internal/jsoncodec"
	loggingpkg "github.com/jobgrid/jobgrid/internal/logging"
	metricshttppkg "github.com/jobgrid/jobgrid/internal/metricshttp"
	monitorpkg "github.com/jobgrid/jobgrid/internal/monitor"
	recordspkg "github.com/jobgrid/jobgrid/internal/records"
	relaypkg "github.com/jobgrid/jobgrid/internal/relay"
	sourcepkg "github.com/jobgrid/jobgrid/internal/source"
)

type (
	Config = configpkg.Config

	// Record views and their raw, classifier-decoded forms.
	Kind      = recordspkg.Kind
	JobState  = recordspkg.JobState
	QueueType = recordspkg.QueueType
	Job       = recordspkg.Job
	Run       = recordspkg.Run
	Market    = recordspkg.Market
	View      = recordspkg.View
	Raw       = recordspkg.Raw
	RawJob    = recordspkg.RawJob
	RawRun    = recordspkg.RawRun
	RawMarket = recordspkg.RawMarket

	// Collaborator contracts consumed by the monitor.
	Notification = monitorpkg.Notification
	Source       = monitorpkg.Source
	Channel      = monitorpkg.Channel
	Classifier   = monitorpkg.Classifier
	Lookup       = monitorpkg.Lookup

	// Monitor surface.
	Monitor     = monitorpkg.Monitor
	Option      = monitorpkg.Option
	StopFunc    = monitorpkg.StopFunc
	Mode        = monitorpkg.Mode
	Event       = monitorpkg.Event
	SimpleEvent = monitorpkg.SimpleEvent
	Metrics     = monitorpkg.Metrics

	// Feed plumbing.
	FeedChannel = sourcepkg.FeedChannel
	Relay       = relaypkg.Relay

	MetricsServer = metricshttppkg.Server

	LogFields     = loggingpkg.LogFields
	ServiceLogger = loggingpkg.ServiceLogger
)

const (
	KindUnknown = recordspkg.KindUnknown
	KindJob     = recordspkg.KindJob
	KindRun     = recordspkg.KindRun
	KindMarket  = recordspkg.KindMarket

	JobQueued    = recordspkg.JobQueued
	JobRunning   = recordspkg.JobRunning
	JobCompleted = recordspkg.JobCompleted
	JobStopped   = recordspkg.JobStopped

	JobQueue  = recordspkg.JobQueue
	NodeQueue = recordspkg.NodeQueue

	ModeSimple   = monitorpkg.ModeSimple
	ModeDetailed = monitorpkg.ModeDetailed

	DefaultBackoffDelay = monitorpkg.DefaultBackoffDelay
	DefaultTopicPrefix  = sourcepkg.DefaultTopicPrefix
)

var (
	NewMonitor = monitorpkg.New
	NewMetrics = monitorpkg.NewMetrics

	StartMetricsServer = metricshttppkg.Start

	WithMetrics        = monitorpkg.WithMetrics
	WithBackoffDelay   = monitorpkg.WithBackoffDelay
	WithTracerProvider = monitorpkg.WithTracerProvider

	// Record transforms, exported for Classifier implementations that
	// want to verify their output and for relay consumers.
	Transform       = recordspkg.Transform
	TransformJob    = recordspkg.TransformJob
	TransformRun    = recordspkg.TransformRun
	TransformMarket = recordspkg.TransformMarket
	ContentID       = recordspkg.ContentID
	UnixTime        = recordspkg.UnixTime

	NewFeedChannel      = sourcepkg.NewFeedChannel
	PublishNotification = sourcepkg.PublishNotification
	NewRelay            = relaypkg.New

	LoadConfig     = configpkg.Load
	ConfigFromEnv  = configpkg.FromEnv
	ValidateConfig = configpkg.ValidateConfig

	NewSlogServiceLogger      = loggingpkg.NewSlogServiceLogger
	NewWatermillServiceLogger = loggingpkg.NewWatermillServiceLogger
	NewWatermillAdapter       = loggingpkg.NewWatermillAdapter
	NopServiceLogger          = loggingpkg.NopServiceLogger

	CreateULID = idspkg.New

	Marshal   = jsoncodec.Marshal
	Unmarshal = jsoncodec.Unmarshal
	Encode    = jsoncodec.Encode
	Decode    = jsoncodec.Decode

	ErrConfigRequired     = errspkg.ErrConfigRequired
	ErrProgramRequired    = errspkg.ErrProgramRequired
	ErrChannelRequired    = errspkg.ErrChannelRequired
	ErrClassifierRequired = errspkg.ErrClassifierRequired
	ErrLookupRequired     = errspkg.ErrLookupRequired
	ErrLoggerRequired     = errspkg.ErrLoggerRequired
	ErrPublisherRequired  = errspkg.ErrPublisherRequired
	ErrTopicRequired      = errspkg.ErrTopicRequired
	ErrNotFound           = errspkg.ErrNotFound
	ErrSourceClosed       = errspkg.ErrSourceClosed
)
