package audit

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// bufferedSink decouples audit writes from the request path. Log enqueues and
// returns immediately; when the buffer is full the entry is dropped and
// counted, never blocking the caller. A single writer goroutine drains the
// buffer under a rate limiter so an audit burst cannot saturate the database.
type bufferedSink struct {
	Repository contracts.AuditLogRepository
	Logger     *zap.Logger

	entries chan models.AuditLog
	done    chan struct{}
	limiter *rate.Limiter
}

func NewBufferedSink(repository contracts.AuditLogRepository, logger *zap.Logger, bufferSize, writesPerSec int) contracts.AuditSink {
	sink := &bufferedSink{
		Repository: repository,
		Logger:     logger,
		entries:    make(chan models.AuditLog, bufferSize),
		done:       make(chan struct{}),
		limiter:    rate.NewLimiter(rate.Limit(writesPerSec), writesPerSec),
	}
	go sink.writeLoop()
	return sink
}

func (s *bufferedSink) Log(entry models.AuditLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	select {
	case s.entries <- entry:
	default:
		s.Logger.Warn("audit buffer full, entry dropped",
			zap.String("module", entry.Module),
			zap.String("action", entry.Action),
		)
	}
}

// Close stops accepting entries and drains what is already buffered.
func (s *bufferedSink) Close() {
	close(s.entries)
	<-s.done
}

func (s *bufferedSink) writeLoop() {
	defer close(s.done)
	for entry := range s.entries {
		if err := s.limiter.Wait(context.Background()); err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.Repository.Insert(ctx, &entry); err != nil {
			s.Logger.Error("failed to persist audit entry", zap.Error(err))
		}
		cancel()
	}
}
