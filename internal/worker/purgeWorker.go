package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/storage"
)

type Repo interface {
	PurgeBatch(context.Context, []storage.URLRecord) error
}

// PurgeTaskWorker collects soft-deleted records from a channel and
// hard-deletes them in batches, either when enough accumulate or on a
// ticker.
type PurgeTaskWorker struct {
	in     chan storage.URLRecord
	logger *zap.Logger
	repo   Repo
}

func NewPurgeWorker(logger *zap.Logger, repo Repo) *PurgeTaskWorker {
	ch := make(chan storage.URLRecord)

	return &PurgeTaskWorker{
		in:     ch,
		logger: logger,
		repo:   repo,
	}
}

func (s *PurgeTaskWorker) GetInChannel() chan<- storage.URLRecord {
	return s.in
}

// FlushRecords drains the channel until the process exits. A failed
// batch is dropped: the rows stay soft-deleted and invisible, and the
// next delete for them queues them again.
func (s *PurgeTaskWorker) FlushRecords() {
	ticker := time.NewTicker(10 * time.Second)
	var records []storage.URLRecord

	purge := func() {
		s.logger.Info("purging deleted records", zap.Int("count", len(records)))
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := s.repo.PurgeBatch(ctx, records); err != nil {
			s.logger.Error("cannot purge records", zap.Error(err))
		}
		records = records[:0]
	}

	for {
		select {
		case msg := <-s.in:
			records = append(records, msg)
			if len(records) > 25 {
				purge()
			}
		case <-ticker.C:
			if len(records) == 0 {
				continue
			}
			purge()
		}
	}
}
