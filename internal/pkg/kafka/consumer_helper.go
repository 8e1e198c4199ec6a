package kafka

import (
	"Viewy/internal/pkg/logger"
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	batchSize     = 32
	batchTimeout  = 1 * time.Second
	maxRetryDelay = 5 * time.Second
)

var errTableMismatch = errors.New("table name not match")

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch buffers messages and flushes on size or timeout
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) > 0 {
			processBatch(session, batch, logic)
			batch = make([]*sarama.ConsumerMessage, 0, batchSize)
		}
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch handles a batch concurrently, retrying each message with backoff,
// then commits the last offset
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	var wg sync.WaitGroup

	for _, msg := range messages {
		wg.Add(1)
		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			ctx := logger.NewTraceContext("kafka-" + m.Topic)
			retryInterval := 100 * time.Millisecond

			for {
				err := logic(ctx, m)
				if err == nil || errors.Is(err, errTableMismatch) {
					return
				}
				log.ErrorContext(ctx, "process message error",
					"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "err", err)

				select {
				case <-session.Context().Done():
					return
				case <-time.After(retryInterval):
				}
				retryInterval *= 2
				if retryInterval > maxRetryDelay {
					retryInterval = maxRetryDelay
				}
			}
		}(msg)
	}

	wg.Wait()

	session.MarkMessage(messages[len(messages)-1], "")
	session.Commit()
}

// ToCanalMessage decodes a Canal event for tableName
func ToCanalMessage(msg *sarama.ConsumerMessage, tableName string) (*CanalMessage, error) {
	var canalMsg CanalMessage
	if err := json.Unmarshal(msg.Value, &canalMsg); err != nil {
		return nil, errors.Wrap(err, "unmarshal canal message")
	}

	if canalMsg.Table != tableName || canalMsg.IsDDL {
		return nil, errTableMismatch
	}

	if len(canalMsg.Data) == 0 {
		return nil, errors.Errorf("canal message %d has no data", canalMsg.ID)
	}

	return &canalMsg, nil
}
