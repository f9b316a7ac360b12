package manager

import (
	"time"

	"github.com/rs/zerolog"

	"rregexd/internal/loader"
	"rregexd/internal/registry"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultMaxWait       = 30 * time.Second
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Registry *registry.Registry
	// Open loads one version; required for anything to become ready.
	Open OpenFunc
	// Publisher receives loader events in addition to logs and metrics.
	Publisher loader.EventPublisher
	// Logger for lifecycle events; nil disables logging.
	Logger        *zerolog.Logger
	MaxQueueDepth int
	MaxWait       time.Duration
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		registry:  cfg.Registry,
		open:      cfg.Open,
		slots:     make(map[string]*execSlots),
		startTime: time.Now(),
	}
	if m.registry == nil {
		m.registry = registry.New(nil, "")
	}
	if m.open == nil {
		m.open = missingOpener
	}
	// Apply defaults if unset
	if cfg.MaxQueueDepth <= 0 {
		m.maxQueueDepth = defaultMaxQueueDepth
	} else {
		m.maxQueueDepth = cfg.MaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		m.maxWait = defaultMaxWait
	} else {
		m.maxWait = cfg.MaxWait
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	pub := loader.MultiPublisher{metricsPublisher{}, logPublisher{log: log}, cfg.Publisher}
	m.log = log
	m.loader = loader.New(loader.NewTable(m.initVersion, pub), pub)
	return m
}
