package container

import (
	"colprofile/adapters/datareadiness"
	"colprofile/adapters/report"
	"colprofile/adapters/tabular"
	"colprofile/app"
	"colprofile/internal"
	"colprofile/internal/config"
	"colprofile/internal/errors"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Adapters
	Scanner  *tabular.Scanner
	Profiler *datareadiness.ProfilerAdapter

	// Services
	ReportService *app.ReportService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.InvalidInput("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: cfg.Logger(),
	}
	c.initAdapters()
	c.initServices()

	c.Logger.Debug("[Container] initialized (chunk size %d, %d workers)", cfg.Scan.ChunkSize, cfg.Scan.Workers)
	return c, nil
}

// initAdapters builds the scanner and the profiler on top of it
func (c *Container) initAdapters() {
	scannerConfig := tabular.DefaultScannerConfig()
	scannerConfig.ChunkSize = c.Config.Scan.ChunkSize

	c.Scanner = tabular.NewScanner(scannerConfig, c.Logger)
	c.Profiler = datareadiness.NewProfilerAdapter(c.Scanner, c.Logger)
}

func (c *Container) initServices() {
	c.ReportService = app.NewReportService(
		c.Profiler,
		c.Scanner,
		report.ForPath,
		app.ReportServiceConfig{
			ChunkSize: c.Config.Scan.ChunkSize,
			Workers:   c.Config.Scan.Workers,
		},
		c.Logger,
	)
}

// Shutdown flushes buffered log output
func (c *Container) Shutdown() error {
	return c.Logger.Sync()
}
