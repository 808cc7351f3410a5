package handler

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	AddBookToCatalog(ctx context.Context, req model.AddBookRequest) (string, error)
	SearchBooksInCatalog(ctx context.Context, term string, searchType model.SearchType) ([]model.Book, error)
	ListCatalog(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, bookID int) (model.Book, error)
	BorrowBookByPatron(ctx context.Context, patronID string, bookID int) (string, error)
	ReturnBookByPatron(ctx context.Context, patronID string, bookID int) (string, error)
	CalculateLateFeeForBook(ctx context.Context, patronID string, bookID int) (model.FeeCalculation, error)
	PayLateFees(ctx context.Context, patronID string, bookID int, gw service.PaymentGateway) (model.PaymentReceipt, error)
	RefundLateFeePayment(ctx context.Context, transactionID string, amount float64, gw service.PaymentGateway) (string, error)
	VerifyPayment(ctx context.Context, transactionID string, gw service.PaymentGateway) (model.PaymentStatus, error)
	GetPatronStatusReport(ctx context.Context, patronID string) (model.PatronStatusReport, error)
	GetActivityStats(ctx context.Context) (model.ActivityStats, error)
}

var _ LibraryService = (*service.Service)(nil)
