package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"go.uber.org/zap"
)

// NotifyOverdue publishes a book.overdue event for every active borrow
// record past its due date and returns how many were found.
func (s *Service) NotifyOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	records, err := s.repo.ListOverdueBorrowRecords(ctx, now)
	if err != nil {
		return 0, s.internalErr("ListOverdueBorrowRecords", err, "Database error occurred while loading overdue records.")
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fee := calculateFee(rec.DueDate, now)
		event := kafka.NewEvent(kafka.EventBookOverdue, now)
		event.PatronID, event.BookID, event.Amount = rec.PatronID, rec.BookID, fee.FeeAmount
		s.publish(ctx, event)
	}
	if len(records) > 0 {
		s.log.Info("overdue records", zap.Int("count", len(records)))
	}
	return len(records), nil
}
