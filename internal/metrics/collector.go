package metrics

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
)

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics. One collection runs immediately, then
// every tick until Stop is called.
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business gauge values from live rows
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	var contents, projects, activeBlocks int64

	if err := c.db.Model(&domain.Content{}).Count(&contents).Error; err != nil {
		c.logger.Warn("Failed to count contents", zap.Error(err))
	} else {
		c.metrics.SetContentsTotal(contents)
	}

	if err := c.db.Model(&domain.Project{}).Count(&projects).Error; err != nil {
		c.logger.Warn("Failed to count projects", zap.Error(err))
	} else {
		c.metrics.SetProjectsTotal(projects)
	}

	if err := c.db.Model(&domain.ContentBlock{}).Where("is_active = ?", true).Count(&activeBlocks).Error; err != nil {
		c.logger.Warn("Failed to count active content blocks", zap.Error(err))
	} else {
		c.metrics.SetActiveBlocksTotal(activeBlocks)
	}
}
