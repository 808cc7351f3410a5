package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	libraryRepo "github.com/Astemirdum/library-catalog/library/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	msgCreateRecordError = "Database error occurred while creating borrow record."
	msgUpdateRecordError = "Database error occurred while updating borrow record."
	msgAvailabilityError = "Database error occurred while updating book availability."
	msgBorrowCountError  = "Database error occurred while checking borrowed books."
	dueDateLayout        = "2006-01-02"
	availabilityBorrowed = -1
	availabilityReturned = 1
)

// BorrowBookByPatron lends one copy of the book to the patron. The borrow
// record and the availability decrement are written in one transaction.
func (s *Service) BorrowBookByPatron(ctx context.Context, patronID string, bookID int) (msg string, err error) {
	defer func() { metrics.Operation("borrow", err) }()

	if !model.ValidPatronID(patronID) {
		return "", errs.Validation(msgInvalidPatronID)
	}
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return "", err
	}
	if book.AvailableCopies <= 0 {
		return "", errs.New(errs.ErrConflict, "This book is currently not available.")
	}

	count, err := s.repo.GetPatronBorrowCount(ctx, patronID)
	if err != nil {
		return "", s.internalErr("GetPatronBorrowCount", err, msgBorrowCountError)
	}
	if count >= model.MaxBorrowLimit {
		return "", errs.Newf(errs.ErrLimitExceeded, "You have reached the maximum borrowing limit of %d books.", model.MaxBorrowLimit)
	}

	now := s.now().UTC()
	rec := model.BorrowRecord{
		PatronID:   patronID,
		BookID:     book.ID,
		BorrowDate: now,
		DueDate:    now.Add(model.LoanPeriod),
	}
	err = s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		if _, err := tx.InsertBorrowRecord(ctx, rec); err != nil {
			return s.internalErr("InsertBorrowRecord", err, msgCreateRecordError)
		}
		if err := tx.UpdateBookAvailability(ctx, book.ID, availabilityBorrowed); err != nil {
			return s.internalErr("UpdateBookAvailability", err, msgAvailabilityError)
		}
		return nil
	})
	if err != nil {
		return "", s.txErr(err, msgCreateRecordError)
	}

	s.log.Info("book borrowed", zap.String("patron", patronID), zap.Int("book", book.ID))
	event := kafka.NewEvent(kafka.EventBookBorrowed, now)
	event.PatronID, event.BookID = patronID, book.ID
	s.publish(ctx, event)

	return fmt.Sprintf(`Successfully borrowed "%s". Due date: %s.`, book.Title, rec.DueDate.Format(dueDateLayout)), nil
}

// ReturnBookByPatron closes the patron's active borrow record for the book
// and puts the copy back into circulation.
func (s *Service) ReturnBookByPatron(ctx context.Context, patronID string, bookID int) (msg string, err error) {
	defer func() { metrics.Operation("return", err) }()

	if !model.ValidPatronID(patronID) {
		return "", errs.Validation(msgInvalidPatronID)
	}
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return "", err
	}
	rec, err := s.activeRecord(ctx, patronID, book.ID)
	if err != nil {
		return "", err
	}
	if book.AvailableCopies >= book.TotalCopies {
		return "", errs.New(errs.ErrConflict, "Book availability is already at maximum.")
	}

	now := s.now().UTC()
	err = s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		if err := tx.MarkBorrowReturned(ctx, rec.ID, now); err != nil {
			return s.internalErr("MarkBorrowReturned", err, msgUpdateRecordError)
		}
		if err := tx.UpdateBookAvailability(ctx, book.ID, availabilityReturned); err != nil {
			return s.internalErr("UpdateBookAvailability", err, msgAvailabilityError)
		}
		return nil
	})
	if err != nil {
		return "", s.txErr(err, msgUpdateRecordError)
	}

	fee := calculateFee(rec.DueDate, now)
	s.log.Info("book returned", zap.String("patron", patronID), zap.Int("book", book.ID), zap.Int("daysOverdue", fee.DaysOverdue))
	event := kafka.NewEvent(kafka.EventBookReturned, now)
	event.PatronID, event.BookID, event.Amount = patronID, book.ID, fee.FeeAmount
	s.publish(ctx, event)

	msg = fmt.Sprintf(`Successfully returned "%s".`, book.Title)
	if fee.FeeAmount > 0 {
		msg += fmt.Sprintf(" Late fee: $%.2f.", fee.FeeAmount)
	}
	return msg, nil
}

func (s *Service) activeRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	rec, err := s.repo.GetActiveBorrowRecord(ctx, patronID, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BorrowRecord{}, errs.NotFound(msgNoActiveRecord)
		}
		return model.BorrowRecord{}, s.internalErr("GetActiveBorrowRecord", err, "Database error occurred while loading borrow record.")
	}
	return rec, nil
}

// txErr keeps messages produced inside a transaction and maps
// commit failures to fallback.
func (s *Service) txErr(err error, fallback string) error {
	var e *errs.Error
	if errors.As(err, &e) {
		return e
	}
	return s.internalErr("WithTx", err, fallback)
}
