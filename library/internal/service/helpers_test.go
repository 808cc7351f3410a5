package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/repository"
	repo_mocks "github.com/Astemirdum/library-catalog/library/internal/repository/mocks"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, r repository.Repository, opts ...service.Option) *service.Service {
	t.Helper()
	opts = append([]service.Option{service.WithClock(func() time.Time { return testNow })}, opts...)
	return service.NewService(r, zap.NewExample().Named("test"), opts...)
}

// passTx runs the transactional closure against the mock itself.
func passTx(r *repo_mocks.MockRepository) {
	r.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(r)
		})
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event kafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
