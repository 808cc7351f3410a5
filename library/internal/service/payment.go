package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/gateway"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/metrics"
	"go.uber.org/zap"
)

// PayLateFees charges the late fee owed for the patron's active borrow of
// the book. A nil gw uses the default gateway.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int, gw PaymentGateway) (receipt model.PaymentReceipt, err error) {
	defer func() { metrics.Operation("pay_late_fees", err) }()

	if !model.ValidPatronID(patronID) {
		return model.PaymentReceipt{}, errs.Validation(msgInvalidPatronID)
	}
	if gw == nil {
		gw = s.newGateway()
	}

	fee, err := s.CalculateLateFeeForBook(ctx, patronID, bookID)
	if err != nil {
		s.log.Debug("CalculateLateFeeForBook", zap.Error(err))
		return model.PaymentReceipt{}, errs.New(errs.ErrNotFound, "Unable to calculate late fees.")
	}
	if fee.FeeAmount == 0 {
		return model.PaymentReceipt{}, errs.Validation("No late fees to pay for this book.")
	}
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return model.PaymentReceipt{}, err
	}

	var res model.PaymentResult
	err = s.cb.Call(func() error {
		var callErr error
		res, callErr = gw.ProcessPayment(ctx, patronID, fee.FeeAmount, fmt.Sprintf("Late fees for '%s'", book.Title))
		return callErr
	})
	metrics.GatewayCall("process_payment", err)
	if err != nil {
		s.log.Error("ProcessPayment", zap.String("patron", patronID), zap.Error(err))
		return model.PaymentReceipt{}, errs.Newf(errs.ErrGateway, "Payment processing error: %s", err.Error())
	}
	if !res.Success {
		return model.PaymentReceipt{}, errs.Newf(errs.ErrGateway, "Payment failed: %s", res.Message)
	}

	s.log.Info("late fee paid", zap.String("patron", patronID), zap.Int("book", book.ID), zap.String("txn", res.TransactionID))
	event := kafka.NewEvent(kafka.EventFeePaid, s.now())
	event.PatronID, event.BookID, event.Amount, event.TransactionID = patronID, book.ID, fee.FeeAmount, res.TransactionID
	s.publish(ctx, event)

	return model.PaymentReceipt{
		TransactionID: res.TransactionID,
		Amount:        fee.FeeAmount,
		Message:       "Payment successful: " + res.Message,
	}, nil
}

// RefundLateFeePayment refunds up to MaxLateFee of a previous payment.
// The gateway message is returned verbatim on success.
func (s *Service) RefundLateFeePayment(ctx context.Context, transactionID string, amount float64, gw PaymentGateway) (msg string, err error) {
	defer func() { metrics.Operation("refund_late_fee", err) }()

	switch {
	case transactionID == "":
		return "", errs.Validation("Invalid transaction ID.")
	case amount <= 0:
		return "", errs.Validation("Refund amount must be greater than 0.")
	case amount > model.MaxLateFee:
		return "", errs.New(errs.ErrLimitExceeded, "Refund amount exceeds maximum late fee.")
	}
	if gw == nil {
		gw = s.newGateway()
	}

	var res model.RefundResult
	err = s.cb.Call(func() error {
		var callErr error
		res, callErr = gw.RefundPayment(ctx, transactionID, amount)
		return callErr
	})
	metrics.GatewayCall("refund_payment", err)
	if err != nil {
		s.log.Error("RefundPayment", zap.String("txn", transactionID), zap.Error(err))
		return "", errs.Newf(errs.ErrGateway, "Refund processing error: %s", err.Error())
	}
	if !res.Success {
		return "", errs.Newf(errs.ErrGateway, "Refund failed: %s", res.Message)
	}

	event := kafka.NewEvent(kafka.EventFeeRefunded, s.now())
	event.Amount, event.TransactionID = amount, transactionID
	event.PatronID, _ = gateway.PatronFromTransactionID(transactionID)
	s.publish(ctx, event)

	return res.Message, nil
}

func (s *Service) VerifyPayment(ctx context.Context, transactionID string, gw PaymentGateway) (model.PaymentStatus, error) {
	if gw == nil {
		gw = s.newGateway()
	}
	var status model.PaymentStatus
	err := s.cb.Call(func() error {
		var callErr error
		status, callErr = gw.VerifyPaymentStatus(ctx, transactionID)
		return callErr
	})
	metrics.GatewayCall("verify_payment_status", err)
	if err != nil {
		return model.PaymentStatus{}, errs.Newf(errs.ErrGateway, "Payment status error: %s", err.Error())
	}
	return status, nil
}
