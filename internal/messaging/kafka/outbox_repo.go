package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx}
}

const outboxTable = "outbox_events"

// retry n waits min(n, 10) * 15s
const retryBackoffExpr = "NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds')"

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Table(outboxTable).Create(map[string]any{
		"id":             event.ID,
		"request_id":     event.RequestID,
		"aggregate_type": event.AggregateType,
		"aggregate_id":   event.AggregateID,
		"event_type":     event.EventType,
		"topic":          event.Topic,
		"payload":        event.Payload,
		"status":         event.Status,
	}).Error
}

// ListPending returns events due for publishing, oldest first. Failed
// events come back once their next_retry_at has passed.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	events := make([]OutboxEvent, 0, limit)
	err := r.db.WithContext(ctx).
		Table(outboxTable).
		Select(`id::text AS id,
	COALESCE(request_id, '') AS request_id,
	aggregate_type, aggregate_id, event_type, topic, payload, status, retry_count,
	COALESCE(next_retry_at, created_at) AS next_retry_at`).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= NOW()").
		Order("created_at ASC").
		Limit(limit).
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Table(outboxTable).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  gorm.Expr("NOW()"),
			"error_message": nil,
			"updated_at":    gorm.Expr("NOW()"),
		}).Error
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return r.db.WithContext(ctx).
		Table(outboxTable).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": gorm.Expr("LEFT(?, 500)", reason),
			"next_retry_at": gorm.Expr(retryBackoffExpr),
			"updated_at":    gorm.Expr("NOW()"),
		}).Error
}

var (
	errOutboxID      = errors.New("outbox id is required")
	errOutboxTopic   = errors.New("outbox topic is required")
	errOutboxPayload = errors.New("outbox payload is required")
)

// ValidateOutboxEvent reports every problem with event at once.
func ValidateOutboxEvent(event OutboxEvent) error {
	var errs []error
	if event.ID == "" {
		errs = append(errs, errOutboxID)
	}
	if event.Topic == "" {
		errs = append(errs, errOutboxTopic)
	}
	if len(event.Payload) == 0 {
		errs = append(errs, errOutboxPayload)
	}
	if event.Status != OutboxStatusPending && event.Status != OutboxStatusSent && event.Status != OutboxStatusFailed {
		errs = append(errs, fmt.Errorf("invalid outbox status: %q", event.Status))
	}
	return errors.Join(errs...)
}
