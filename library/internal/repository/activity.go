package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=activity.go -destination=mocks/activity.go

type ActivityRepository interface {
	RecordEvent(ctx context.Context, event kafka.Event) error
	PatronActivity(ctx context.Context) ([]model.PatronActivity, error)
}

type pgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type activityRepository struct {
	db  pgxConn
	log *zap.Logger
}

// NewActivityRepository works on a *pgxpool.Pool.
func NewActivityRepository(db pgxConn, log *zap.Logger) *activityRepository {
	return &activityRepository{
		db:  db,
		log: log.Named("activity-repo"),
	}
}

// RecordEvent is idempotent on the event id, so redelivered messages are ignored.
func (r *activityRepository) RecordEvent(ctx context.Context, event kafka.Event) error {
	const q = `insert into library_events (id, event_type, patron_id, book_id, amount, transaction_id, occurred_at)
	values (@id, @event_type, nullif(@patron_id, ''), nullif(@book_id, 0), @amount, nullif(@transaction_id, ''), @occurred_at)
	on conflict (id) do nothing`
	args := pgx.NamedArgs{
		"id":             event.ID.String(),
		"event_type":     string(event.Type),
		"patron_id":      event.PatronID,
		"book_id":        event.BookID,
		"amount":         event.Amount,
		"transaction_id": event.TransactionID,
		"occurred_at":    event.OccurredAt,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		r.log.Error("RecordEvent", zap.String("id", event.ID.String()), zap.Error(err))
		return errors.Wrap(err, "RecordEvent")
	}
	return nil
}

func (r *activityRepository) PatronActivity(ctx context.Context) ([]model.PatronActivity, error) {
	const q = `
	select patron_id, max(occurred_at) as last_activity,
	       count(*) filter (where event_type = 'book.borrowed') as borrowed,
	       count(*) filter (where event_type = 'book.returned') as returned,
	       count(*) filter (where event_type = 'book.overdue') as overdue_notices,
	       coalesce(sum(amount) filter (where event_type = 'fee.paid'), 0)::float8 as fees_paid,
	       coalesce(sum(amount) filter (where event_type = 'fee.refunded'), 0)::float8 as fees_refunded
	from library_events
	where patron_id is not null
	group by patron_id
	order by patron_id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "PatronActivity")
	}
	defer rows.Close()
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PatronActivity])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}
