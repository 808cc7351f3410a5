package gateway

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

const (
	MaxPaymentAmount = 1000.0

	transactionPrefix = "txn_"
	refundPrefix      = "refund_"
)

// Patron ids are embedded in transaction ids, so both patterns share the
// patron part.
const patronPattern = `[0-9A-Za-z]{6}`

var (
	patronIDRe      = regexp.MustCompile(`^` + patronPattern + `$`)
	transactionIDRe = regexp.MustCompile(`^txn_` + patronPattern + `_[0-9]+$`)
)

type transaction struct {
	patronID    string
	amount      float64
	description string
	createdAt   time.Time
}

// Gateway simulates a payment provider. Payments are kept in memory only.
type Gateway struct {
	mu   sync.Mutex
	txns map[string]transaction
	last int64
	now  func() time.Time
}

type Option func(g *Gateway)

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		g.now = now
	}
}

func New(opts ...Option) *Gateway {
	g := &Gateway{
		txns: make(map[string]transaction),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ProcessPayment declines with a message on invalid input. The error is
// reserved for faults such as a cancelled context.
func (g *Gateway) ProcessPayment(ctx context.Context, patronID string, amount float64, description string) (model.PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return model.PaymentResult{}, err
	}
	switch {
	case !patronIDRe.MatchString(patronID):
		return model.PaymentResult{Message: "Invalid patron ID format"}, nil
	case amount <= 0:
		return model.PaymentResult{Message: "Invalid amount: must be positive"}, nil
	case amount > MaxPaymentAmount:
		return model.PaymentResult{Message: "Payment declined: amount exceeds limit"}, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UTC()
	txnID := transactionPrefix + patronID + "_" + strconv.FormatInt(g.nextSuffix(now), 10)
	g.txns[txnID] = transaction{
		patronID:    patronID,
		amount:      amount,
		description: description,
		createdAt:   now,
	}

	return model.PaymentResult{
		Success:       true,
		TransactionID: txnID,
		Message:       fmt.Sprintf("Payment of $%.2f processed successfully", amount),
	}, nil
}

func (g *Gateway) RefundPayment(ctx context.Context, transactionID string, amount float64) (model.RefundResult, error) {
	if err := ctx.Err(); err != nil {
		return model.RefundResult{}, err
	}
	if !transactionIDRe.MatchString(transactionID) {
		return model.RefundResult{Message: "Invalid transaction ID"}, nil
	}
	if amount <= 0 {
		return model.RefundResult{Message: "Invalid refund amount"}, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	refundID := refundPrefix + transactionID + "_" + strconv.FormatInt(g.nextSuffix(g.now()), 10)
	return model.RefundResult{
		Success: true,
		Message: fmt.Sprintf("Refund of $%.2f processed successfully. Refund ID: %s", amount, refundID),
	}, nil
}

// VerifyPaymentStatus reports payments made through this gateway with their
// real amount. Other well formed ids are reported completed with a zero
// amount and the time encoded in the id.
func (g *Gateway) VerifyPaymentStatus(ctx context.Context, transactionID string) (model.PaymentStatus, error) {
	if err := ctx.Err(); err != nil {
		return model.PaymentStatus{}, err
	}
	if !transactionIDRe.MatchString(transactionID) {
		return model.PaymentStatus{
			Status:  model.TransactionNotFound,
			Message: "Transaction not found",
		}, nil
	}

	g.mu.Lock()
	txn, ok := g.txns[transactionID]
	g.mu.Unlock()

	if !ok {
		suffix := transactionID[strings.LastIndexByte(transactionID, '_')+1:]
		nanos, _ := strconv.ParseInt(suffix, 10, 64)
		txn = transaction{createdAt: time.Unix(0, nanos).UTC()}
	}
	createdAt := txn.createdAt
	return model.PaymentStatus{
		Status:        model.TransactionCompleted,
		Message:       "Transaction completed",
		TransactionID: transactionID,
		Amount:        txn.amount,
		Timestamp:     &createdAt,
	}, nil
}

// nextSuffix must be called with g.mu held.
func (g *Gateway) nextSuffix(now time.Time) int64 {
	n := now.UnixNano()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return n
}

// PatronFromTransactionID returns the patron id embedded in a transaction id.
func PatronFromTransactionID(transactionID string) (string, bool) {
	if !transactionIDRe.MatchString(transactionID) {
		return "", false
	}
	return transactionID[len(transactionPrefix) : len(transactionPrefix)+6], true
}
