package consumer

import (
	"context"
	"errors"

	"go-payroll/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ErrSkip marks a message that should be committed without being processed.
var ErrSkip = errors.New("skip message")

type handleFunc func(ctx context.Context, msg kafkago.Message) error

// consume fetches messages until ctx is cancelled. A message is committed when
// it was handled, skipped, or failed with a client error that a retry cannot
// fix. Other failures leave the offset uncommitted.
func consume(ctx context.Context, reader MessageReader, log *zap.Logger, handle handleFunc) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil && !isPermanent(err) {
			log.Error("handle message failed, leaving uncommitted",
				zap.Int64("offset", msg.Offset),
				zap.Int("partition", msg.Partition),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

func isPermanent(err error) bool {
	if errors.Is(err, ErrSkip) {
		return true
	}
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus > 0 && appErr.HTTPStatus < 500
}
