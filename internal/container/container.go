// Package container provides dependency injection for the expense tracker.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/render"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/store"
	"fjacquet/expense-tracker/pkg/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.ExpenseStore
	aggregator *report.Aggregator
	generator  *report.Generator
	renderer   *render.Renderer
	tracker    *tracker.Tracker
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	renderer, err := render.NewRenderer(cfg.Display.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	expenseStore := store.NewExpenseStore(cfg.Store.File, logger)
	aggregator := report.NewAggregator(expenseStore, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, expenseStore.Path()),
		logging.F("style", cfg.Display.Style))

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      expenseStore,
		aggregator: aggregator,
		generator:  report.NewGenerator(cfg.Display.CurrencySymbol, logger),
		renderer:   renderer,
		tracker:    tracker.New(expenseStore, aggregator, logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the expense store.
func (c *Container) GetStore() *store.ExpenseStore {
	return c.store
}

// GetAggregator returns the category report aggregator.
func (c *Container) GetAggregator() *report.Aggregator {
	return c.aggregator
}

// GetGenerator returns the report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetRenderer returns the terminal markdown renderer.
func (c *Container) GetRenderer() *render.Renderer {
	return c.renderer
}

// GetTracker returns the boolean-result facade over store and aggregator.
func (c *Container) GetTracker() *tracker.Tracker {
	return c.tracker
}

// Close performs cleanup of container resources.
// File handles are scoped to single store operations, so nothing is held open.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
