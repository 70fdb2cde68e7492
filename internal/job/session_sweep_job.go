package job

import (
	"Pulseboard/internal/service"
	"context"
	log "log/slog"
	"time"
)

// SessionSweepJob 定期清理内存中过期的会话数据集
type SessionSweepJob struct {
	datasetSvc service.DatasetService
}

func NewSessionSweepJob(datasetSvc service.DatasetService) *SessionSweepJob {
	return &SessionSweepJob{datasetSvc: datasetSvc}
}

func (s *SessionSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.datasetSvc.Sweep(ctx)
	if err != nil {
		log.Error("session sweep job failed", "err", err)
		return
	}
	if n > 0 {
		log.Info("session sweep job finished", "cleaned_count", n)
	}
}
