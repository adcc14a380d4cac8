package usecase

import (
	"sync"

	"github.com/map-annotator/internal/domain"
)

// Readiness - сигнал готовности карты. Переход loading -> ready|error
// выполняется один раз и больше не откатывается.
type Readiness struct {
	mu    sync.RWMutex
	state domain.ReadinessState
	err   error
	done  chan struct{}
}

// NewReadiness - создание сигнала в состоянии loading
func NewReadiness() *Readiness {
	return &Readiness{
		state: domain.ReadinessLoading,
		done:  make(chan struct{}),
	}
}

// Resolve фиксирует результат загрузки. Возвращает false, если результат уже был зафиксирован.
func (r *Readiness) Resolve(err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.ReadinessLoading {
		return false
	}

	if err != nil {
		r.state = domain.ReadinessError
		r.err = err
	} else {
		r.state = domain.ReadinessReady
	}
	close(r.done)

	return true
}

// State возвращает текущее состояние
func (r *Readiness) State() domain.ReadinessState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// IsReady - карта загружена
func (r *Readiness) IsReady() bool {
	return r.State() == domain.ReadinessReady
}

// Err возвращает ошибку загрузки, если она была
func (r *Readiness) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Done закрывается после Resolve
func (r *Readiness) Done() <-chan struct{} {
	return r.done
}
