package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type stuckWorker struct {
	*BaseWorker
}

func (w *stuckWorker) Start(ctx context.Context) error {
	time.Sleep(time.Second)
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(time.Second, zap.NewNop())

	w := &blockingWorker{BaseWorker: NewBaseWorker("blocking", zap.NewNop())}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())

	// повторная остановка безопасна
	assert.NoError(t, w.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(0, zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_ShutdownTimeout(t *testing.T) {
	m := NewWorkerManager(20*time.Millisecond, zap.NewNop())
	m.Register(&stuckWorker{BaseWorker: NewBaseWorker("stuck", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
