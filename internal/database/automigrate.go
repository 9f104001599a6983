package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
)

// modelInfo holds a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// migratedModels lists every domain model in dependency order: taxonomy
// and users first, then content with its extensions, then projects and
// blocks that reference content.
func migratedModels() []modelInfo {
	return []modelInfo{
		{&domain.IntelligenceArea{}, "intelligence_areas"},
		{&domain.TopicArea{}, "topic_areas"},
		{&domain.GeographicArea{}, "geographic_areas"},
		{&domain.User{}, "users"},
		{&domain.Content{}, "contents"},
		{&domain.Index{}, "content_indices"},
		{&domain.Scenario{}, "content_scenarios"},
		{&domain.ScenarioImage{}, "scenario_images"},
		{&domain.TrendRadar{}, "content_trend_radars"},
		{&domain.ParticipatoryData{}, "content_participatory_data"},
		{&domain.Project{}, "projects"},
		{&domain.ContentBlock{}, "content_blocks"},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models, creating
// tables, indexes and foreign key constraints from the struct definitions
func AutoMigrate(db *gorm.DB) error {
	models := migratedModels()
	targets := make([]interface{}, 0, len(models))
	for _, m := range models {
		targets = append(targets, m.model)
	}

	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate migrates one model at a time, logging whether each
// table existed beforehand. Existing tables only receive schema updates.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	models := migratedModels()

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(models)),
	)

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed",
		zap.Int("tables_migrated", len(models)),
	)

	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate up to maxRetries times
// with linear backoff between attempts
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
