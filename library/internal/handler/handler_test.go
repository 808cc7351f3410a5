package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/handler"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-catalog/library/internal/handler/mocks"
)

type response struct {
	expectedCode int
	expectedBody string
}

func serve(t *testing.T, svc *service_mocks.MockLibraryService, method, route, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.Add(method, route, map[string]echo.HandlerFunc{
		"/books":                          h.AddBook,
		"/books/:bookID/borrow":           h.BorrowBook,
		"/books/:bookID/return":           h.ReturnBook,
		"/books/:bookID/late-fee":         h.LateFee,
		"/payments/:transactionID/refund": h.RefundPayment,
	}[route])

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	type input struct {
		bookID string
		body   string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().BorrowBookByPatron(gomock.Any(), "123456", 1).
					Return(`Successfully borrowed "1984". Due date: 2024-04-03.`, nil)
			},
			input: input{bookID: "1", body: `{"patronId":"123456"}`},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Successfully borrowed \"1984\". Due date: 2024-04-03."}`,
			},
		},
		{
			name:         "err. bad book id",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{bookID: "abc", body: `{"patronId":"123456"}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid book ID."}`,
			},
		},
		{
			name:         "err. patron required",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{bookID: "1", body: `{}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Patron ID is required."}`,
			},
		},
		{
			name: "err. invalid patron",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().BorrowBookByPatron(gomock.Any(), "12", 1).
					Return("", errs.Validation("Invalid patron ID. Must be exactly 6 digits."))
			},
			input: input{bookID: "1", body: `{"patronId":"12"}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid patron ID. Must be exactly 6 digits."}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().BorrowBookByPatron(gomock.Any(), "123456", 1).
					Return("", errs.NotFound("Book not found."))
			},
			input: input{bookID: "1", body: `{"patronId":"123456"}`},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found."}`,
			},
		},
		{
			name: "err. not available",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().BorrowBookByPatron(gomock.Any(), "123456", 1).
					Return("", errs.New(errs.ErrConflict, "This book is currently not available."))
			},
			input: input{bookID: "1", body: `{"patronId":"123456"}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"This book is currently not available."}`,
			},
		},
		{
			name: "err. limit",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().BorrowBookByPatron(gomock.Any(), "123456", 1).
					Return("", errs.New(errs.ErrLimitExceeded, "You have reached the maximum borrowing limit of 5 books."))
			},
			input: input{bookID: "1", body: `{"patronId":"123456"}`},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"You have reached the maximum borrowing limit of 5 books."}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().BorrowBookByPatron(gomock.Any(), "123456", 1).
					Return("", errors.New("db internal"))
			},
			input: input{bookID: "1", body: `{"patronId":"123456"}`},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			w := serve(t, svc, http.MethodPost, "/books/:bookID/borrow", "/books/"+tt.input.bookID+"/borrow", tt.input.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddBook(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().AddBookToCatalog(gomock.Any(), model.AddBookRequest{
		Title: "E2E Test Book", Author: "Philip QA", ISBN: "9999999999999", TotalCopies: 3,
	}).Return(`Book "E2E Test Book" has been successfully added to the catalog.`, nil)

	w := serve(t, svc, http.MethodPost, "/books", "/books",
		`{"title":"E2E Test Book","author":"Philip QA","isbn":"9999999999999","totalCopies":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"message":"Book \"E2E Test Book\" has been successfully added to the catalog."}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodPost, "/books", "/books", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().ReturnBookByPatron(gomock.Any(), "123456", 2).
		Return("", errs.NotFound("No active borrow record found for this patron and book."))

	w := serve(t, svc, http.MethodPost, "/books/:bookID/return", "/books/2/return", `{"patronId":"123456"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"No active borrow record found for this patron and book."}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_LateFee(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().CalculateLateFeeForBook(gomock.Any(), "123456", 3).
		Return(model.FeeCalculation{FeeAmount: 1.5, DaysOverdue: 3, Status: model.FeeStatusOverdue}, nil)

	w := serve(t, svc, http.MethodGet, "/books/:bookID/late-fee", "/books/3/late-fee?patronId=123456", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"feeAmount":1.5,"daysOverdue":3,"status":"overdue"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, svc, http.MethodGet, "/books/:bookID/late-fee", "/books/3/late-fee", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RefundPayment(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	gomock.InOrder(
		svc.EXPECT().RefundLateFeePayment(gomock.Any(), "txn_123456_1", 20.0, gomock.Nil()).
			Return("", errs.New(errs.ErrLimitExceeded, "Refund amount exceeds maximum late fee.")),
		svc.EXPECT().RefundLateFeePayment(gomock.Any(), "bad_txn", 5.0, gomock.Nil()).
			Return("", errs.New(errs.ErrGateway, "Refund failed: Invalid transaction ID")),
	)

	w := serve(t, svc, http.MethodPost, "/payments/:transactionID/refund", "/payments/txn_123456_1/refund", `{"amount":20}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(t, svc, http.MethodPost, "/payments/:transactionID/refund", "/payments/bad_txn/refund", `{"amount":5}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, `{"message":"Refund failed: Invalid transaction ID"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Router(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().ListCatalog(gomock.Any()).Return([]model.Book{{ID: 1, Title: "1984"}}, nil)
	svc.EXPECT().SearchBooksInCatalog(gomock.Any(), "orwell", model.SearchByAuthor).Return([]model.Book{}, nil)
	svc.EXPECT().SearchBooksInCatalog(gomock.Any(), "gatsby", model.SearchByTitle).Return([]model.Book{}, nil)
	svc.EXPECT().VerifyPayment(gomock.Any(), "nope", gomock.Nil()).
		Return(model.PaymentStatus{Status: model.TransactionNotFound, Message: "Transaction not found"}, nil)
	svc.EXPECT().PayLateFees(gomock.Any(), "123456", 1, gomock.Nil()).
		Return(model.PaymentReceipt{TransactionID: "txn_123456_1", Amount: 1, Message: "Payment successful: ok"}, nil)
	svc.EXPECT().GetPatronStatusReport(gomock.Any(), "123456").
		Return(model.PatronStatusReport{PatronID: "123456"}, nil)
	svc.EXPECT().GetActivityStats(gomock.Any()).
		Return(model.ActivityStats{Data: []model.PatronActivity{{PatronID: "123456", Borrowed: 1}}}, nil)

	router := handler.New(svc, zap.NewNop()).NewRouter()
	do := func(method, target, body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, target, strings.NewReader(body)).WithContext(context.Background())
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w
	}

	w := do(http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	w = do(http.MethodGet, "/api/v1/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"title":"1984"`)

	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/books?q=orwell&type=author", "").Code)
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/books?q=gatsby", "").Code)
	w = do(http.MethodGet, "/api/v1/payments/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"status":"not_found","message":"Transaction not found","amount":0}`, strings.TrimSpace(w.Body.String()))
	require.Equal(t, http.StatusOK, do(http.MethodPost, "/api/v1/books/1/late-fee/payment", `{"patronId":"123456"}`).Code)
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/patrons/123456/status", "").Code)

	w = do(http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"borrowed":1`)

	w = do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "library_http_requests_total")

	w = do(http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/books/{bookID}/borrow")
}
