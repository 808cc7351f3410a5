package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/gateway"
	libraryRepo "github.com/Astemirdum/library-catalog/library/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"go.uber.org/zap"
)

const (
	msgInvalidPatronID = "Invalid patron ID. Must be exactly 6 digits."
	msgBookNotFound    = "Book not found."
	msgNoActiveRecord  = "No active borrow record found for this patron and book."
)

type Service struct {
	log        *zap.Logger
	repo       libraryRepo.Repository
	newGateway func() PaymentGateway
	publisher  kafka.Publisher
	cb         circuit_breaker.CircuitBreaker
	activity   libraryRepo.ActivityRepository
	now        func() time.Time
}

type Option func(s *Service)

// WithGatewayFactory sets how the gateway is built when a payment
// operation is called without one.
func WithGatewayFactory(f func() PaymentGateway) Option {
	return func(s *Service) {
		s.newGateway = f
	}
}

func WithPublisher(p kafka.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithCircuitBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(s *Service) {
		s.cb = cb
	}
}

func WithActivity(repo libraryRepo.ActivityRepository) Option {
	return func(s *Service) {
		s.activity = repo
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:        log.Named("service"),
		repo:       repo,
		newGateway: func() PaymentGateway { return gateway.New() },
		publisher:  kafka.NopPublisher{},
		cb:         circuit_breaker.New(10, 30*time.Second, 0.5, 3),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) publish(ctx context.Context, event kafka.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func (s *Service) internalErr(op string, err error, msg string) error {
	s.log.Error(op, zap.Error(err))
	return errs.New(errs.ErrInternal, msg)
}
