package contextutil_test

import (
	"context"
	"testing"

	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestMetadata(t *testing.T) {
	ctx := contextutil.WithUserID(contextutil.WithRequestID(context.Background(), "req-1"), "user-9")

	assert.Equal(t, "req-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "user-9", contextutil.GetUserID(ctx))
	assert.Len(t, contextutil.Fields(ctx), 2)

	assert.Empty(t, contextutil.GetRequestID(context.Background()))
	assert.Empty(t, contextutil.Fields(context.Background()))
}

func TestGetLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	scoped := zap.New(core)
	fallback := zap.NewNop()

	t.Run("scoped logger wins", func(t *testing.T) {
		ctx := contextutil.WithLogger(context.Background(), scoped)

		contextutil.GetLogger(ctx, fallback).Info("hello")

		assert.Equal(t, 1, logs.FilterMessage("hello").Len())
	})

	t.Run("fallback when unset", func(t *testing.T) {
		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("nop when nothing available", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
