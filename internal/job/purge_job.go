package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stratoview-taxonomy-api/internal/client"
	"stratoview-taxonomy-api/internal/repository"
)

// PurgeJob removes scenario images that were marked deleted: the stored
// object is deleted first, then the row. Rows whose object deletion
// fails stay marked and are retried on the next run.
type PurgeJob struct {
	contentRepo repository.ContentRepository
	storage     client.StorageClient
	logger      *zap.Logger
}

// NewPurgeJob creates a new PurgeJob instance
func NewPurgeJob(contentRepo repository.ContentRepository, storage client.StorageClient, logger *zap.Logger) *PurgeJob {
	return &PurgeJob{
		contentRepo: contentRepo,
		storage:     storage,
		logger:      logger,
	}
}

// Run executes one purge cycle. It satisfies cron.Job.
func (j *PurgeJob) Run() {
	ctx := context.Background()

	images, err := j.contentRepo.FindDeletedScenarioImages(ctx)
	if err != nil {
		j.logger.Error("Failed to find deleted scenario images", zap.Error(err))
		return
	}
	if len(images) == 0 {
		return
	}

	j.logger.Info("Purging deleted scenario images", zap.Int("count", len(images)))

	var purged []uuid.UUID
	failCount := 0

	for _, image := range images {
		if j.storage != nil {
			if err := j.storage.DeleteFile(ctx, image.FileKey); err != nil {
				j.logger.Error("Failed to delete stored object",
					zap.String("image_id", image.ID.String()),
					zap.String("file_key", image.FileKey),
					zap.Error(err),
				)
				failCount++
				continue
			}
		}

		if err := j.contentRepo.PurgeScenarioImage(ctx, image.ID); err != nil {
			j.logger.Error("Failed to purge scenario image row",
				zap.String("image_id", image.ID.String()),
				zap.Error(err),
			)
			failCount++
			continue
		}
		purged = append(purged, image.ID)
	}

	j.logger.Info("Purge cycle completed",
		zap.Int("total", len(images)),
		zap.Int("purged", len(purged)),
		zap.Int("failed", failCount),
	)
}
