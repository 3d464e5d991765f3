package audit

import (
	"context"
	"hemolink-service/internal/app/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type recordingRepository struct {
	mu      sync.Mutex
	entries []models.AuditLog
	block   chan struct{}
}

func (r *recordingRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *recordingRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries, int64(len(r.entries)), nil
}

func (r *recordingRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestBufferedSink_PersistsEntries(t *testing.T) {
	repo := &recordingRepository{}
	sink := NewBufferedSink(repo, zap.NewNop(), 16, 1000)

	for i := 0; i < 5; i++ {
		sink.Log(models.AuditLog{ID: "entry", Module: "donors", Action: "create"})
	}
	sink.Close()

	assert.Equal(t, 5, repo.count())
}

func TestBufferedSink_StampsCreatedAt(t *testing.T) {
	repo := &recordingRepository{}
	sink := NewBufferedSink(repo, zap.NewNop(), 16, 1000)

	sink.Log(models.AuditLog{ID: "entry", Module: "sessions", Action: "create"})
	sink.Close()

	assert.Equal(t, 1, repo.count())
	assert.False(t, repo.entries[0].CreatedAt.IsZero())
}

func TestBufferedSink_DropsWhenFullWithoutBlocking(t *testing.T) {
	repo := &recordingRepository{block: make(chan struct{})}
	sink := NewBufferedSink(repo, zap.NewNop(), 2, 1000)

	done := make(chan struct{})
	go func() {
		// Way more entries than the buffer holds while the writer is stuck.
		for i := 0; i < 50; i++ {
			sink.Log(models.AuditLog{ID: "entry", Module: "donors", Action: "view"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Log must never block the caller, even with a full buffer")
	}

	close(repo.block)
	sink.Close()
	assert.LessOrEqual(t, repo.count(), 3, "Only the buffered entries plus the in-flight one survive")
}
