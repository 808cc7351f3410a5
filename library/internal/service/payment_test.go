package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	repo_mocks "github.com/Astemirdum/library-catalog/library/internal/repository/mocks"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	gw_mocks "github.com/Astemirdum/library-catalog/library/internal/service/mocks"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestService_PayLateFees(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway)

	tenDaysLate := activeRecord(1, 1, testNow.Add(-10*24*time.Hour))
	book := model.Book{ID: 1, Title: "Test Book", TotalCopies: 2, AvailableCopies: 1}

	tests := []struct {
		name         string
		patronID     string
		mockBehavior mockBehavior
		want         model.PaymentReceipt
		wantKind     error
		wantMsg      string
	}{
		{
			name:     "ok",
			patronID: "123456",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {
				r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(tenDaysLate, nil)
				r.EXPECT().GetBookByID(gomock.Any(), 1).Return(book, nil)
				gw.EXPECT().ProcessPayment(gomock.Any(), "123456", 5.0, "Late fees for 'Test Book'").
					Return(model.PaymentResult{Success: true, TransactionID: "txn_123456_1", Message: "Payment of $5.00 processed successfully"}, nil)
			},
			want: model.PaymentReceipt{
				TransactionID: "txn_123456_1",
				Amount:        5,
				Message:       "Payment successful: Payment of $5.00 processed successfully",
			},
		},
		{
			name:     "declined",
			patronID: "123456",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {
				r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(tenDaysLate, nil)
				r.EXPECT().GetBookByID(gomock.Any(), 1).Return(book, nil)
				gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.PaymentResult{Message: "Card declined"}, nil)
			},
			wantKind: errs.ErrGateway,
			wantMsg:  "Payment failed: Card declined",
		},
		{
			name:     "gateway fault",
			patronID: "123456",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {
				r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(tenDaysLate, nil)
				r.EXPECT().GetBookByID(gomock.Any(), 1).Return(book, nil)
				gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.PaymentResult{}, errors.New("Network error"))
			},
			wantKind: errs.ErrGateway,
			wantMsg:  "Payment processing error: Network error",
		},
		{
			name:         "invalid patron id",
			patronID:     "12345",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {},
			wantKind:     errs.ErrValidation,
			wantMsg:      "Invalid patron ID. Must be exactly 6 digits.",
		},
		{
			name:     "unable to calculate",
			patronID: "123456",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {
				r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(model.BorrowRecord{}, errs.ErrNotFound)
			},
			wantKind: errs.ErrNotFound,
			wantMsg:  "Unable to calculate late fees.",
		},
		{
			name:     "no fee owed",
			patronID: "123456",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {
				r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).
					Return(activeRecord(1, 1, testNow.Add(24*time.Hour)), nil)
			},
			wantKind: errs.ErrValidation,
			wantMsg:  "No late fees to pay for this book.",
		},
		{
			name:     "book not found",
			patronID: "123456",
			mockBehavior: func(r *repo_mocks.MockRepository, gw *gw_mocks.MockPaymentGateway) {
				r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(tenDaysLate, nil)
				r.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{}, errs.ErrNotFound)
			},
			wantKind: errs.ErrNotFound,
			wantMsg:  "Book not found.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			r := repo_mocks.NewMockRepository(c)
			gw := gw_mocks.NewMockPaymentGateway(c)
			tt.mockBehavior(r, gw)

			s := newTestService(t, r, service.WithGatewayFactory(func() service.PaymentGateway {
				t.Fatal("default gateway must not be built when one is passed")
				return nil
			}))
			got, err := s.PayLateFees(context.Background(), tt.patronID, 1, gw)
			if tt.wantKind != nil {
				require.ErrorIs(t, err, tt.wantKind)
				require.Equal(t, tt.wantMsg, err.Error())
				require.Empty(t, got.TransactionID)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_PayLateFees_DefaultGateway(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	r := repo_mocks.NewMockRepository(c)
	gw := gw_mocks.NewMockPaymentGateway(c)
	pub := &recordingPublisher{}

	r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(activeRecord(1, 1, testNow.Add(-2*24*time.Hour)), nil)
	r.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{ID: 1, Title: "Default Book"}, nil)
	gw.EXPECT().ProcessPayment(gomock.Any(), "123456", 1.0, "Late fees for 'Default Book'").
		Return(model.PaymentResult{Success: true, TransactionID: "txn_123456_7", Message: "ok"}, nil)

	built := 0
	s := newTestService(t, r,
		service.WithPublisher(pub),
		service.WithGatewayFactory(func() service.PaymentGateway {
			built++
			return gw
		}))

	receipt, err := s.PayLateFees(context.Background(), "123456", 1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, built)
	require.Equal(t, "txn_123456_7", receipt.TransactionID)
	require.Equal(t, []kafka.EventType{kafka.EventFeePaid}, pub.types())
	require.Equal(t, 1.0, pub.events[0].Amount)
}

func TestService_PayLateFees_CircuitBreakerOpen(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	r := repo_mocks.NewMockRepository(c)
	gw := gw_mocks.NewMockPaymentGateway(c)

	r.EXPECT().GetActiveBorrowRecord(gomock.Any(), "123456", 1).Return(activeRecord(1, 1, testNow.Add(-3*24*time.Hour)), nil).Times(2)
	r.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{ID: 1, Title: "Flaky"}, nil).Times(2)
	gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.PaymentResult{}, errors.New("network down")).Times(1)

	s := newTestService(t, r, service.WithCircuitBreaker(circuit_breaker.New(2, time.Minute, 0.5, 1)))

	_, err := s.PayLateFees(context.Background(), "123456", 1, gw)
	require.EqualError(t, err, "Payment processing error: network down")

	_, err = s.PayLateFees(context.Background(), "123456", 1, gw)
	require.ErrorIs(t, err, errs.ErrGateway)
	require.EqualError(t, err, "Payment processing error: "+circuit_breaker.ErrOpenCB.Error())
}

func TestService_RefundLateFeePayment(t *testing.T) {
	t.Parallel()
	type mockBehavior func(gw *gw_mocks.MockPaymentGateway)

	tests := []struct {
		name          string
		transactionID string
		amount        float64
		mockBehavior  mockBehavior
		wantMsg       string
		wantKind      error
	}{
		{
			name:          "ok",
			transactionID: "txn_123456_1700000000",
			amount:        10,
			mockBehavior: func(gw *gw_mocks.MockPaymentGateway) {
				gw.EXPECT().RefundPayment(gomock.Any(), "txn_123456_1700000000", 10.0).
					Return(model.RefundResult{Success: true, Message: "Refund of $10.00 processed successfully. Refund ID: refund_txn_123456_1700000000_1"}, nil)
			},
			wantMsg: "Refund of $10.00 processed successfully. Refund ID: refund_txn_123456_1700000000_1",
		},
		{
			name:          "maximum amount",
			transactionID: "txn_123456_1700000000",
			amount:        15,
			mockBehavior: func(gw *gw_mocks.MockPaymentGateway) {
				gw.EXPECT().RefundPayment(gomock.Any(), gomock.Any(), 15.0).
					Return(model.RefundResult{Success: true, Message: "done"}, nil)
			},
			wantMsg: "done",
		},
		{
			name:          "empty transaction id",
			transactionID: "",
			amount:        10,
			mockBehavior:  func(gw *gw_mocks.MockPaymentGateway) {},
			wantMsg:       "Invalid transaction ID.",
			wantKind:      errs.ErrValidation,
		},
		{
			name:          "zero amount",
			transactionID: "txn_123456_1700000000",
			amount:        0,
			mockBehavior:  func(gw *gw_mocks.MockPaymentGateway) {},
			wantMsg:       "Refund amount must be greater than 0.",
			wantKind:      errs.ErrValidation,
		},
		{
			name:          "negative amount",
			transactionID: "txn_123456_1700000000",
			amount:        -5,
			mockBehavior:  func(gw *gw_mocks.MockPaymentGateway) {},
			wantMsg:       "Refund amount must be greater than 0.",
			wantKind:      errs.ErrValidation,
		},
		{
			name:          "exceeds maximum late fee",
			transactionID: "txn_123456_1700000000",
			amount:        15.01,
			mockBehavior:  func(gw *gw_mocks.MockPaymentGateway) {},
			wantMsg:       "Refund amount exceeds maximum late fee.",
			wantKind:      errs.ErrLimitExceeded,
		},
		{
			name:          "gateway rejects",
			transactionID: "bad_txn",
			amount:        5,
			mockBehavior: func(gw *gw_mocks.MockPaymentGateway) {
				gw.EXPECT().RefundPayment(gomock.Any(), "bad_txn", 5.0).
					Return(model.RefundResult{Message: "Invalid transaction ID"}, nil)
			},
			wantMsg:  "Refund failed: Invalid transaction ID",
			wantKind: errs.ErrGateway,
		},
		{
			name:          "gateway fault",
			transactionID: "txn_123456_1700000000",
			amount:        5,
			mockBehavior: func(gw *gw_mocks.MockPaymentGateway) {
				gw.EXPECT().RefundPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.RefundResult{}, errors.New("timeout"))
			},
			wantMsg:  "Refund processing error: timeout",
			wantKind: errs.ErrGateway,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			gw := gw_mocks.NewMockPaymentGateway(c)
			tt.mockBehavior(gw)

			msg, err := newTestService(t, repo_mocks.NewMockRepository(c)).
				RefundLateFeePayment(context.Background(), tt.transactionID, tt.amount, gw)
			if tt.wantKind != nil {
				require.ErrorIs(t, err, tt.wantKind)
				require.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestService_VerifyPayment(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	gw := gw_mocks.NewMockPaymentGateway(c)
	want := model.PaymentStatus{Status: model.TransactionCompleted, TransactionID: "txn_123456_1", Amount: 2.5}
	gw.EXPECT().VerifyPaymentStatus(gomock.Any(), "txn_123456_1").Return(want, nil)

	got, err := newTestService(t, repo_mocks.NewMockRepository(c)).VerifyPayment(context.Background(), "txn_123456_1", gw)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
