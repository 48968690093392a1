// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/laulijun/udo/internal/domain"
	"github.com/laulijun/udo/internal/engine"
	"github.com/laulijun/udo/internal/infra/config"
	"github.com/laulijun/udo/internal/infra/diskvstore"
	"github.com/laulijun/udo/internal/infra/gitbackup"
	"github.com/laulijun/udo/internal/infra/jsonfile"
	"github.com/laulijun/udo/internal/infra/logging"
	"github.com/laulijun/udo/internal/infra/yamlfile"
	"github.com/laulijun/udo/internal/parser"
)

// File and directory names inside the data directory.
const (
	jsonStoreFile = "items.json"
	yamlStoreFile = "items.yaml"
	diskvStoreDir = "items"
)

// Container wires the application's ports to their implementations.
type Container struct {
	Storage domain.ItemStorage
	Clock   domain.Clock
	Logger  domain.Logger
	Parser  *parser.Parser
	Engine  *engine.Engine

	Config  *config.Config
	DataDir string
}

// New creates a Container from the user's configuration. The engine is
// constructed but not loaded; callers decide when to read the store.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Container from an explicit configuration.
// This is useful for testing.
func NewWithConfig(cfg *config.Config) (*Container, error) {
	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	var storage domain.ItemStorage
	switch cfg.Storage.Backend {
	case config.BackendYAML:
		storage = yamlfile.New(filepath.Join(dataDir, yamlStoreFile))
	case config.BackendDiskv:
		storage = diskvstore.New(filepath.Join(dataDir, diskvStoreDir))
	default:
		storage = jsonfile.New(filepath.Join(dataDir, jsonStoreFile))
	}

	var logger domain.Logger = domain.NopLogger{}
	if cfg.Log.Level != "" {
		logger = logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))
	}

	if cfg.Storage.Backup {
		storage = gitbackup.New(storage, dataDir, logger)
	}

	clock := domain.RealClock{}
	return &Container{
		Storage: storage,
		Clock:   clock,
		Logger:  logger,
		Parser:  parser.New(clock),
		Engine:  engine.New(storage, logger),
		Config:  cfg,
		DataDir: dataDir,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(storage domain.ItemStorage, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Storage: storage,
		Clock:   clock,
		Logger:  logger,
		Parser:  parser.New(clock),
		Engine:  engine.New(storage, logger),
		Config:  config.NewDefaultConfig(),
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
