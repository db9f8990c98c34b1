package jobs

import (
	"context"

	"medrent-backend/internal/logger"
)

// PurgeExpiredPendingImages removes image rows whose upload URL expired
// without the client ever confirming the upload.
func (jr *JobRunner) PurgeExpiredPendingImages() {
	jr.runWithRecovery("PurgeExpiredPendingImages", func() {
		ctx := context.Background()

		purged, err := jr.store.EquipmentRepository.DeleteExpiredPendingImages(ctx)
		if err != nil {
			logger.Error("Failed to purge expired pending images", "error", err)
			return
		}
		logger.Info("Expired pending images purged", "count", purged)
	})
}
