package service

import (
	"context"
	"math"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"golang.org/x/sync/errgroup"
)

const day = 24 * time.Hour

// calculateFee charges LateFeePerDay for every whole day past due, up to MaxLateFee.
func calculateFee(dueDate, at time.Time) model.FeeCalculation {
	days := int(at.Sub(dueDate) / day)
	if days <= 0 {
		return model.FeeCalculation{Status: model.FeeStatusOnTime}
	}
	return model.FeeCalculation{
		FeeAmount:   math.Min(float64(days)*model.LateFeePerDay, model.MaxLateFee),
		DaysOverdue: days,
		Status:      model.FeeStatusOverdue,
	}
}

func (s *Service) CalculateLateFeeForBook(ctx context.Context, patronID string, bookID int) (model.FeeCalculation, error) {
	if !model.ValidPatronID(patronID) {
		return model.FeeCalculation{}, errs.Validation(msgInvalidPatronID)
	}
	rec, err := s.activeRecord(ctx, patronID, bookID)
	if err != nil {
		return model.FeeCalculation{}, err
	}
	return calculateFee(rec.DueDate, s.now().UTC()), nil
}

func (s *Service) GetPatronStatusReport(ctx context.Context, patronID string) (model.PatronStatusReport, error) {
	if !model.ValidPatronID(patronID) {
		return model.PatronStatusReport{}, errs.Validation(msgInvalidPatronID)
	}
	records, err := s.repo.ListPatronBorrowRecords(ctx, patronID)
	if err != nil {
		return model.PatronStatusReport{}, s.internalErr("ListPatronBorrowRecords", err, "Database error occurred while loading patron records.")
	}

	active := make([]model.BorrowRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Returned() {
			active = append(active, rec)
		}
	}

	books := make([]model.Book, len(active))
	gg, gctx := errgroup.WithContext(ctx)
	for i := range active {
		i := i
		gg.Go(func() error {
			book, err := s.repo.GetBookByID(gctx, active[i].BookID)
			if err != nil {
				return err
			}
			books[i] = book
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return model.PatronStatusReport{}, s.internalErr("GetBookByID", err, "Database error occurred while loading borrowed books.")
	}

	now := s.now().UTC()
	report := model.PatronStatusReport{
		PatronID:          patronID,
		CurrentlyBorrowed: make([]model.BorrowedBook, 0, len(active)),
		BorrowCount:       len(active),
		History:           records,
	}
	for i, rec := range active {
		fee := calculateFee(rec.DueDate, now)
		report.CurrentlyBorrowed = append(report.CurrentlyBorrowed, model.BorrowedBook{
			BookID:     rec.BookID,
			Title:      books[i].Title,
			Author:     books[i].Author,
			BorrowDate: rec.BorrowDate,
			DueDate:    rec.DueDate,
			IsOverdue:  fee.DaysOverdue > 0,
			LateFee:    fee.FeeAmount,
		})
		report.TotalLateFees += fee.FeeAmount
	}
	report.TotalLateFees = math.Round(report.TotalLateFees*100) / 100
	return report, nil
}
