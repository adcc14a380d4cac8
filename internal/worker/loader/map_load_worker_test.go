package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/domain/repository"
	"github.com/map-annotator/internal/usecase"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockRegistrar struct {
	mock.Mock
	readiness       *usecase.Readiness
	readyAtRegister bool
}

func (m *mockRegistrar) RegisterViewport(surface repository.MapSurface) bool {
	m.readyAtRegister = m.readiness.IsReady()
	return m.Called(surface).Bool(0)
}

type noopSurface struct{}

func (noopSurface) PanTo(domain.Coordinate) {}
func (noopSurface) SetZoom(int)             {}

func runWorker(t *testing.T, w *MapLoadWorker, readiness *usecase.Readiness) {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	select {
	case <-readiness.Done():
	case <-time.After(time.Second):
		t.Fatal("readiness was not resolved")
	}

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestMapLoadWorker_Success(t *testing.T) {
	readiness := usecase.NewReadiness()
	surface := noopSurface{}

	loader := &mockLoader{}
	loader.On("Load", mock.Anything).Return(nil).Once()

	registrar := &mockRegistrar{readiness: readiness}
	registrar.On("RegisterViewport", surface).Return(true).Once()

	w := NewMapLoadWorker(loader, readiness, registrar, surface, time.Second, zap.NewNop())
	assert.Equal(t, "map-loader", w.Name())

	runWorker(t, w, readiness)

	assert.Equal(t, domain.ReadinessReady, readiness.State())
	assert.False(t, registrar.readyAtRegister, "surface must be registered before ready")
	loader.AssertExpectations(t)
	registrar.AssertExpectations(t)
}

func TestMapLoadWorker_Failure(t *testing.T) {
	readiness := usecase.NewReadiness()

	loader := &mockLoader{}
	loader.On("Load", mock.Anything).Return(errors.New("token rejected")).Once()

	registrar := &mockRegistrar{readiness: readiness}

	w := NewMapLoadWorker(loader, readiness, registrar, noopSurface{}, time.Second, zap.NewNop())
	runWorker(t, w, readiness)

	assert.Equal(t, domain.ReadinessError, readiness.State())
	require.Error(t, readiness.Err())
	assert.Contains(t, readiness.Err().Error(), "token rejected")
	registrar.AssertNotCalled(t, "RegisterViewport", mock.Anything)
}

func TestMapLoadWorker_Timeout(t *testing.T) {
	readiness := usecase.NewReadiness()

	loader := &mockLoader{}
	loader.On("Load", mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(context.DeadlineExceeded).Once()

	w := NewMapLoadWorker(loader, readiness, &mockRegistrar{readiness: readiness}, noopSurface{}, 20*time.Millisecond, zap.NewNop())
	runWorker(t, w, readiness)

	assert.Equal(t, domain.ReadinessError, readiness.State())
	assert.ErrorIs(t, readiness.Err(), context.DeadlineExceeded)
}
