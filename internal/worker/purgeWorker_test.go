package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/storage"
)

type fakeRepo struct {
	mu      sync.Mutex
	batches [][]storage.URLRecord
}

func (f *fakeRepo) PurgeBatch(ctx context.Context, records []storage.URLRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	batch := make([]storage.URLRecord, len(records))
	copy(batch, records)
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakeRepo) purged() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, b := range f.batches {
		total += len(b)
	}
	return total
}

func TestFlushRecordsOnThreshold(t *testing.T) {
	repo := &fakeRepo{}
	w := NewPurgeWorker(zap.NewNop(), repo)

	go w.FlushRecords()

	in := w.GetInChannel()
	for i := 0; i < 26; i++ {
		in <- storage.URLRecord{ID: "id", UserID: "user-1"}
	}

	assert.Eventually(t, func() bool {
		return repo.purged() == 26
	}, 2*time.Second, 10*time.Millisecond)
}
