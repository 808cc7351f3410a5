package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/gateway"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=gateway.go -destination=mocks/mock.go

type PaymentGateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount float64, description string) (model.PaymentResult, error)
	RefundPayment(ctx context.Context, transactionID string, amount float64) (model.RefundResult, error)
	VerifyPaymentStatus(ctx context.Context, transactionID string) (model.PaymentStatus, error)
}

var _ PaymentGateway = (*gateway.Gateway)(nil)
