package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-catalog/library/config"
	"github.com/Astemirdum/library-catalog/library/internal/gateway"
	"github.com/Astemirdum/library-catalog/library/internal/handler"
	"github.com/Astemirdum/library-catalog/library/internal/job"
	"github.com/Astemirdum/library-catalog/library/internal/repository"
	"github.com/Astemirdum/library-catalog/library/internal/server"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	"github.com/Astemirdum/library-catalog/library/migrations"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	pool, err := postgres.NewPgxPool(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatal("pgx pool init", zap.Error(err))
	}
	activity := repository.NewActivityRepository(pool, log)

	var (
		publisher kafka.Publisher = kafka.NopPublisher{}
		producer  sarama.SyncProducer
	)
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		publisher = kafka.NewPublisher(producer, kafka.LibraryEventsTopic)
	} else {
		log.Warn("KAFKA_ADDRS is empty, library events are not published")
	}

	// one simulator instance so payments stay verifiable and refundable
	gw := gateway.New()
	svc := service.NewService(repo, log,
		service.WithGatewayFactory(func() service.PaymentGateway { return gw }),
		service.WithPublisher(publisher),
		service.WithCircuitBreaker(circuit_breaker.NewFromConfig(cfg.PaymentBreaker)),
		service.WithActivity(activity),
	)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	var consumer sarama.ConsumerGroup
	if len(cfg.Kafka.Addrs) > 0 {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		go func() {
			if err := kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.RecordEvent, log), kafka.LibraryEventsTopic); err != nil {
				log.Error("kafka.Consume", zap.Error(err))
			}
		}()
	}

	scheduler, err := job.NewScheduler(cfg.Jobs.OverdueSchedule, svc, log)
	if err != nil {
		log.Fatal("job.NewScheduler", zap.Error(err))
	}
	scheduler.Start()

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = scheduler.Stop(closeCtx); err != nil {
		log.Error("scheduler.Stop", zap.Error(err))
	}
	stopConsume()
	if consumer != nil {
		if err = consumer.Close(); err != nil {
			log.Error("consumer.Close", zap.Error(err))
		}
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	pool.Close()
	if err = db.Close(); err != nil {
		log.Error("db.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
