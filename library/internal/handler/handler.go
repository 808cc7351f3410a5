package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	_ "github.com/Astemirdum/library-catalog/library/swagger"
	"github.com/Astemirdum/library-catalog/pkg/metrics"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const (
	msgInvalidBookID  = "Invalid book ID."
	msgInvalidRequest = "Invalid request body."
	msgPatronRequired = "Patron ID is required."
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.Metrics,
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookID", h.GetBook)
	api.POST("/books/:bookID/borrow", h.BorrowBook)
	api.POST("/books/:bookID/return", h.ReturnBook)
	api.GET("/books/:bookID/late-fee", h.LateFee)
	api.POST("/books/:bookID/late-fee/payment", h.PayLateFees)

	api.GET("/payments/:transactionID", h.VerifyPayment)
	api.POST("/payments/:transactionID/refund", h.RefundPayment)

	api.GET("/patrons/:patronID/status", h.PatronStatus)
	api.GET("/stats", h.GetStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequest)
	}
	msg, err := h.librarySvc.AddBookToCatalog(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.Response{Message: msg})
}

// ListBooks returns the whole catalog, or the search result when q is set.
func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	term := c.QueryParam("q")
	searchType := model.SearchType(c.QueryParam("type"))
	if term == "" && searchType == "" {
		books, err := h.librarySvc.ListCatalog(ctx)
		if err != nil {
			return h.httpError(err)
		}
		return c.JSON(http.StatusOK, books)
	}
	if searchType == "" {
		searchType = model.SearchByTitle
	}
	books, err := h.librarySvc.SearchBooksInCatalog(ctx, term, searchType)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) BorrowBook(c echo.Context) error {
	bookID, req, err := h.patronAction(c)
	if err != nil {
		return err
	}
	msg, err := h.librarySvc.BorrowBookByPatron(c.Request().Context(), req.PatronID, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Response{Message: msg})
}

func (h *Handler) ReturnBook(c echo.Context) error {
	bookID, req, err := h.patronAction(c)
	if err != nil {
		return err
	}
	msg, err := h.librarySvc.ReturnBookByPatron(c.Request().Context(), req.PatronID, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Response{Message: msg})
}

func (h *Handler) LateFee(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	patronID := c.QueryParam("patronId")
	if patronID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgPatronRequired)
	}
	fee, err := h.librarySvc.CalculateLateFeeForBook(c.Request().Context(), patronID, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fee)
}

func (h *Handler) PayLateFees(c echo.Context) error {
	bookID, req, err := h.patronAction(c)
	if err != nil {
		return err
	}
	receipt, err := h.librarySvc.PayLateFees(c.Request().Context(), req.PatronID, bookID, nil)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (h *Handler) RefundPayment(c echo.Context) error {
	var req model.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequest)
	}
	msg, err := h.librarySvc.RefundLateFeePayment(c.Request().Context(), c.Param("transactionID"), req.Amount, nil)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Response{Message: msg})
}

func (h *Handler) VerifyPayment(c echo.Context) error {
	status, err := h.librarySvc.VerifyPayment(c.Request().Context(), c.Param("transactionID"), nil)
	if err != nil {
		return h.httpError(err)
	}
	if status.Status == model.TransactionNotFound {
		return c.JSON(http.StatusNotFound, status)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *Handler) PatronStatus(c echo.Context) error {
	report, err := h.librarySvc.GetPatronStatusReport(c.Request().Context(), c.Param("patronID"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.librarySvc.GetActivityStats(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) patronAction(c echo.Context) (int, model.PatronRequest, error) {
	bookID, err := bookIDParam(c)
	if err != nil {
		return 0, model.PatronRequest{}, err
	}
	var req model.PatronRequest
	if err := c.Bind(&req); err != nil {
		return 0, model.PatronRequest{}, echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequest)
	}
	if err := c.Validate(&req); err != nil {
		return 0, model.PatronRequest{}, echo.NewHTTPError(http.StatusBadRequest, msgPatronRequired)
	}
	return bookID, req, nil
}

func bookIDParam(c echo.Context) (int, error) {
	bookID, err := strconv.Atoi(c.Param("bookID"))
	if err != nil || bookID <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, msgInvalidBookID)
	}
	return bookID, nil
}

func (h *Handler) httpError(err error) *echo.HTTPError {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
	}
	return echo.NewHTTPError(code, errs.Message(err))
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrLimitExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
