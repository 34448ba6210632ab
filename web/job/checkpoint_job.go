// Package job contains scheduled maintenance tasks run by the web server's
// cron scheduler.
package job

import (
	"github.com/nurcom/crm/database"
	"github.com/nurcom/crm/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file so the
// on-disk database stays compact and copy-safe between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
